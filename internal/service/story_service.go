package service

import (
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type StoryStore interface {
	List(f models.CatalogFilter) ([]models.Story, error)
	GetBySlug(slug string) (*models.Story, error)
}

type StoryService struct {
	stories StoryStore
}

func NewStoryService(stories StoryStore) *StoryService {
	return &StoryService{stories: stories}
}

func (s *StoryService) List(f models.CatalogFilter) ([]models.Story, error) {
	f.ClampLimit()

	stories, err := s.stories.List(f)
	if err != nil {
		return nil, err
	}

	for i := range stories {
		stories[i].Normalize()
	}
	if stories == nil {
		stories = []models.Story{}
	}
	return stories, nil
}

func (s *StoryService) GetBySlug(slug string) (*models.Story, error) {
	story, err := s.stories.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	story.Normalize()
	return story, nil
}
