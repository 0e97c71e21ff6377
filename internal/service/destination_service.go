package service

import (
	"go.uber.org/zap"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type DestinationStore interface {
	List(f models.CatalogFilter) ([]models.Destination, error)
	GetBySlug(slug string) (*models.Destination, error)
	TripCounts() (map[string]int64, error)
}

type DestinationTripStore interface {
	List(f models.CatalogFilter) ([]models.DestinationTrip, error)
	GetBySlug(slug string) (*models.DestinationTrip, error)
}

type DestinationService struct {
	destinations DestinationStore
	trips        DestinationTripStore
	logger       *zap.Logger
}

func NewDestinationService(destinations DestinationStore, trips DestinationTripStore, logger *zap.Logger) *DestinationService {
	return &DestinationService{
		destinations: destinations,
		trips:        trips,
		logger:       logger,
	}
}

// List returns destinations with their live trip counts. The aggregate is a
// best-effort enrichment: when it fails, the stored denormalized counter on
// each row is served instead.
func (s *DestinationService) List(f models.CatalogFilter) ([]models.Destination, error) {
	f.ClampLimit()

	destinations, err := s.destinations.List(f)
	if err != nil {
		return nil, err
	}

	counts, err := s.destinations.TripCounts()
	if err != nil {
		s.logger.Warn("trip count aggregation failed, serving stored counters", zap.Error(err))
		counts = nil
	}

	for i := range destinations {
		if counts != nil {
			destinations[i].Trips = int(counts[destinations[i].Slug])
		}
		destinations[i].Normalize()
	}
	if destinations == nil {
		destinations = []models.Destination{}
	}
	return destinations, nil
}

// GetBySlug reads one destination, enriched with its live trip count when the
// aggregate is available.
func (s *DestinationService) GetBySlug(slug string) (*models.Destination, error) {
	dest, err := s.destinations.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	counts, err := s.destinations.TripCounts()
	if err != nil {
		s.logger.Warn("trip count aggregation failed, serving stored counter", zap.Error(err))
	} else {
		dest.Trips = int(counts[dest.Slug])
	}

	dest.Normalize()
	return dest, nil
}

func (s *DestinationService) ListTrips(f models.CatalogFilter) ([]models.DestinationTrip, error) {
	f.ClampLimit()

	trips, err := s.trips.List(f)
	if err != nil {
		return nil, err
	}

	for i := range trips {
		trips[i].Normalize()
	}
	if trips == nil {
		trips = []models.DestinationTrip{}
	}
	return trips, nil
}

func (s *DestinationService) GetTripBySlug(slug string) (*models.DestinationTrip, error) {
	trip, err := s.trips.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	trip.Normalize()
	return trip, nil
}
