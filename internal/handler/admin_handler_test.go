package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/handler"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/utils"
)

func newAdminApp(store *mockUserStore) *fiber.App {
	adminHandler := handler.NewAdminHandler(service.NewUserService(store), utils.NewValidator())

	app := fiber.New()
	app.Get("/api/admin/users", adminHandler.ListUsers)
	app.Put("/api/admin/users", adminHandler.UpdateUserRole)
	return app
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	store := newMockUserStore()
	username := "asha"
	require.NoError(t, store.Create(&models.User{Username: &username, Role: models.RoleUser}))
	app := newAdminApp(store)

	req := jsonRequest(t, http.MethodPut, "/api/admin/users", models.UpdateRoleRequest{
		ID:   1,
		Role: "superuser",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Stored document untouched.
	assert.Zero(t, store.updateCalls)
	stored, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestUpdateUserRole(t *testing.T) {
	store := newMockUserStore()
	username := "asha"
	require.NoError(t, store.Create(&models.User{Username: &username, Role: models.RoleUser}))
	app := newAdminApp(store)

	req := jsonRequest(t, http.MethodPut, "/api/admin/users", models.UpdateRoleRequest{
		ID:   1,
		Role: "admin",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Success)

	var user models.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUpdateUserRoleUnknownUser(t *testing.T) {
	app := newAdminApp(newMockUserStore())

	req := jsonRequest(t, http.MethodPut, "/api/admin/users", models.UpdateRoleRequest{
		ID:   404,
		Role: "admin",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListUsersStripsPasswords(t *testing.T) {
	store := newMockUserStore()
	username := "asha"
	require.NoError(t, store.Create(&models.User{Username: &username, Password: "$2a$10$hash", Role: models.RoleUser}))
	app := newAdminApp(store)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/admin/users", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.NotContains(t, string(env.Data), "$2a$10$hash")
}
