package service

import (
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type TripStore interface {
	List(f models.CatalogFilter) ([]models.Trip, error)
	GetBySlug(slug string) (*models.Trip, error)
}

type TripService struct {
	trips TripStore
}

func NewTripService(trips TripStore) *TripService {
	return &TripService{trips: trips}
}

func (s *TripService) List(f models.CatalogFilter) ([]models.Trip, error) {
	f.ClampLimit()

	trips, err := s.trips.List(f)
	if err != nil {
		return nil, err
	}

	for i := range trips {
		trips[i].Normalize()
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

func (s *TripService) GetBySlug(slug string) (*models.Trip, error) {
	trip, err := s.trips.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	trip.Normalize()
	return trip, nil
}
