package repository

import (
	"gorm.io/gorm"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) List(f models.CatalogFilter) ([]models.Destination, error) {
	q := r.db.Model(&models.Destination{})

	if f.Popular != nil {
		q = q.Where("is_popular = ?", *f.Popular)
	}
	if f.Q != "" {
		pattern := like(f.Q)
		q = q.Where("name ILIKE ? OR country ILIKE ?", pattern, pattern)
	}

	var destinations []models.Destination
	err := q.Order(listOrder).Limit(f.Limit).Find(&destinations).Error
	return destinations, translate(err)
}

func (r *DestinationRepository) GetBySlug(slug string) (*models.Destination, error) {
	var dest models.Destination
	if err := r.db.Where("slug = ?", slug).First(&dest).Error; err != nil {
		return nil, translate(err)
	}
	return &dest, nil
}

// TripCounts aggregates destination_trips by destination slug. Used to
// enrich listings with a live count; callers fall back to the stored counter
// when this fails.
func (r *DestinationRepository) TripCounts() (map[string]int64, error) {
	type row struct {
		DestinationSlug string
		N               int64
	}

	var rows []row
	err := r.db.Model(&models.DestinationTrip{}).
		Select("destination_slug, COUNT(*) AS n").
		Group("destination_slug").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.DestinationSlug] = row.N
	}
	return counts, nil
}
