package service

import (
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type TestimonialStore interface {
	List(limit int) ([]models.Testimonial, error)
}

type TestimonialService struct {
	testimonials TestimonialStore
}

func NewTestimonialService(testimonials TestimonialStore) *TestimonialService {
	return &TestimonialService{testimonials: testimonials}
}

func (s *TestimonialService) List(limit int) ([]models.Testimonial, error) {
	if limit <= 0 {
		limit = models.DefaultListLimit
	}
	if limit > models.MaxListLimit {
		limit = models.MaxListLimit
	}

	testimonials, err := s.testimonials.List(limit)
	if err != nil {
		return nil, err
	}

	for i := range testimonials {
		testimonials[i].Normalize()
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	return testimonials, nil
}
