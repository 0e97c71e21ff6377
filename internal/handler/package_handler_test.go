package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/handler"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/utils"
)

type mockPackageStore struct {
	list      func(f models.CatalogFilter) ([]models.Package, error)
	getBySlug func(slug string) (*models.Package, error)
	upserted  []*models.Package
}

var _ service.PackageStore = (*mockPackageStore)(nil)

func (m *mockPackageStore) List(f models.CatalogFilter) ([]models.Package, error) {
	return m.list(f)
}

func (m *mockPackageStore) GetBySlug(slug string) (*models.Package, error) {
	return m.getBySlug(slug)
}

func (m *mockPackageStore) Upsert(pkg *models.Package) error {
	m.upserted = append(m.upserted, pkg)
	return nil
}

func (m *mockPackageStore) DeleteBySlug(slug string) error { return nil }

func newPackageApp(store *mockPackageStore) *fiber.App {
	packageHandler := handler.NewPackageHandler(service.NewPackageService(store), utils.NewValidator())

	app := fiber.New()
	app.Get("/api/packages", packageHandler.GetPackages)
	app.Get("/api/packages/:slug", packageHandler.GetPackageBySlug)
	app.Put("/api/admin/packages", packageHandler.UpsertPackage)
	return app
}

func TestGetPackages(t *testing.T) {
	store := &mockPackageStore{list: func(f models.CatalogFilter) ([]models.Package, error) {
		return []models.Package{
			{Slug: "spiti-circuit", Title: "Spiti Circuit", DisplayOrder: 1, Image: "spiti.jpg"},
			{Slug: "meghalaya-caves", Title: "Meghalaya Caves", DisplayOrder: 2},
		}, nil
	}}
	app := newPackageApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/packages", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Success)

	var packages []models.Package
	require.NoError(t, json.Unmarshal(env.Data, &packages))
	require.Len(t, packages, 2)

	// Listing order is preserved and empty media gets the placeholder.
	assert.Equal(t, "spiti-circuit", packages[0].Slug)
	assert.Equal(t, models.PlaceholderImage, packages[1].Image)
}

func TestGetPackagesRejectsUnknownType(t *testing.T) {
	app := newPackageApp(&mockPackageStore{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/packages?type=lunar", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPackageBySlugNotFound(t *testing.T) {
	store := &mockPackageStore{getBySlug: func(slug string) (*models.Package, error) {
		return nil, models.ErrNotFound
	}}
	app := newPackageApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/packages/no-such-trip", nil))
	require.NoError(t, err)

	// A slug miss is a 404 envelope, never a 200 with null data.
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestUpsertPackageValidation(t *testing.T) {
	store := &mockPackageStore{}
	app := newPackageApp(store)

	req := jsonRequest(t, http.MethodPut, "/api/admin/packages", models.PackageRequest{
		Slug:  "spiti-circuit",
		Title: "Spiti Circuit",
		Type:  models.PackageType("interstellar"),
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.upserted)
}

func TestUpsertPackage(t *testing.T) {
	store := &mockPackageStore{}
	app := newPackageApp(store)

	req := jsonRequest(t, http.MethodPut, "/api/admin/packages", models.PackageRequest{
		Slug:  "spiti-circuit",
		Title: "Spiti Circuit",
		Type:  models.PackageDomestic,
		Price: 24999,
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, store.upserted, 1)
	assert.Equal(t, "spiti-circuit", store.upserted[0].Slug)
}
