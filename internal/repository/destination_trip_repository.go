package repository

import (
	"gorm.io/gorm"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type DestinationTripRepository struct {
	db *gorm.DB
}

func NewDestinationTripRepository(db *gorm.DB) *DestinationTripRepository {
	return &DestinationTripRepository{db: db}
}

func (r *DestinationTripRepository) List(f models.CatalogFilter) ([]models.DestinationTrip, error) {
	q := r.db.Model(&models.DestinationTrip{})

	if f.Destination != "" {
		q = q.Where("destination_slug = ?", f.Destination)
	}
	if f.Q != "" {
		pattern := like(f.Q)
		q = q.Where("title ILIKE ? OR location ILIKE ? OR destination_name ILIKE ?", pattern, pattern, pattern)
	}

	var trips []models.DestinationTrip
	err := q.Order(listOrder).Limit(f.Limit).Find(&trips).Error
	return trips, translate(err)
}

func (r *DestinationTripRepository) GetBySlug(slug string) (*models.DestinationTrip, error) {
	var trip models.DestinationTrip
	if err := r.db.Where("slug = ?", slug).First(&trip).Error; err != nil {
		return nil, translate(err)
	}
	return &trip, nil
}
