package repository

import (
	"gorm.io/gorm"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) List(f models.CatalogFilter) ([]models.Package, error) {
	q := r.db.Model(&models.Package{})

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

	var packages []models.Package
	err := q.Order(listOrder).Limit(f.Limit).Find(&packages).Error
	return packages, translate(err)
}

func (r *PackageRepository) GetBySlug(slug string) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.Where("slug = ?", slug).First(&pkg).Error; err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *PackageRepository) Upsert(pkg *models.Package) error {
	var existing models.Package
	err := r.db.Where("slug = ?", pkg.Slug).First(&existing).Error
	if err == nil {
		pkg.ID = existing.ID
		pkg.CreatedAt = existing.CreatedAt
		return translate(r.db.Save(pkg).Error)
	}
	return translate(r.db.Create(pkg).Error)
}

func (r *PackageRepository) DeleteBySlug(slug string) error {
	res := r.db.Where("slug = ?", slug).Delete(&models.Package{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
