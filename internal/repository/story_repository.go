package repository

import (
	"gorm.io/gorm"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type StoryRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func (r *StoryRepository) List(f models.CatalogFilter) ([]models.Story, error) {
	q := r.db.Model(&models.Story{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Q != "" {
		pattern := like(f.Q)
		q = q.Where(
			"title ILIKE ? OR excerpt ILIKE ? OR content ILIKE ? OR category ILIKE ? OR author_name ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var stories []models.Story
	err := q.Order(listOrder).Limit(f.Limit).Find(&stories).Error
	return stories, translate(err)
}

func (r *StoryRepository) GetBySlug(slug string) (*models.Story, error) {
	var story models.Story
	if err := r.db.Where("slug = ?", slug).First(&story).Error; err != nil {
		return nil, translate(err)
	}
	return &story, nil
}
