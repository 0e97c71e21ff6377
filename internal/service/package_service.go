package service

import (
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type PackageStore interface {
	List(f models.CatalogFilter) ([]models.Package, error)
	GetBySlug(slug string) (*models.Package, error)
	Upsert(pkg *models.Package) error
	DeleteBySlug(slug string) error
}

type PackageService struct {
	packages PackageStore
}

func NewPackageService(packages PackageStore) *PackageService {
	return &PackageService{packages: packages}
}

func (s *PackageService) List(f models.CatalogFilter) ([]models.Package, error) {
	f.ClampLimit()

	packages, err := s.packages.List(f)
	if err != nil {
		return nil, err
	}

	for i := range packages {
		packages[i].Normalize()
	}
	if packages == nil {
		packages = []models.Package{}
	}
	return packages, nil
}

func (s *PackageService) GetBySlug(slug string) (*models.Package, error) {
	pkg, err := s.packages.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	pkg.Normalize()
	return pkg, nil
}

// Upsert creates or replaces the package identified by the request slug.
func (s *PackageService) Upsert(req models.PackageRequest) (*models.Package, error) {
	pkg := &models.Package{
		Slug:         req.Slug,
		Title:        req.Title,
		Location:     req.Location,
		Country:      req.Country,
		Description:  req.Description,
		Price:        req.Price,
		Duration:     req.Duration,
		Type:         req.Type,
		Image:        req.Image,
		Images:       req.Images,
		Itinerary:    req.Itinerary,
		DisplayOrder: req.Order,
	}

	if err := s.packages.Upsert(pkg); err != nil {
		return nil, err
	}
	pkg.Normalize()
	return pkg, nil
}

func (s *PackageService) Delete(slug string) error {
	return s.packages.DeleteBySlug(slug)
}
