package repository

import (
	"gorm.io/gorm"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) List(f models.CatalogFilter) ([]models.Trip, error) {
	q := r.db.Model(&models.Trip{})

	if f.Activity != "" {
		q = q.Where("activity = ?", f.Activity)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Q != "" {
		pattern := like(f.Q)
		q = q.Where(
			"title ILIKE ? OR location ILIKE ? OR country ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var trips []models.Trip
	err := q.Order(listOrder).Limit(f.Limit).Find(&trips).Error
	return trips, translate(err)
}

func (r *TripRepository) GetBySlug(slug string) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.Where("slug = ?", slug).First(&trip).Error; err != nil {
		return nil, translate(err)
	}
	return &trip, nil
}
