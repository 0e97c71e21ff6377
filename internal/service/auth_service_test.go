package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/bcrypt"
	jwtPkg "github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/jwt"
)

// mockUserStore is an in-memory test double for service.UserStore.
type mockUserStore struct {
	users       map[uint]*models.User
	nextID      uint
	updateCalls int
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: map[uint]*models.User{}}
}

var _ service.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) Create(user *models.User) error {
	for _, existing := range m.users {
		if user.Email != nil && existing.Email != nil && *user.Email == *existing.Email {
			return models.ErrConflict
		}
		if user.Username != nil && existing.Username != nil && *user.Username == *existing.Username {
			return models.ErrConflict
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserStore) GetByID(id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserStore) GetByIdentifier(identifier string) (*models.User, error) {
	for _, user := range m.users {
		if (user.Email != nil && *user.Email == identifier) ||
			(user.Username != nil && *user.Username == identifier) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockUserStore) EmailExists(email string) (bool, error) {
	for _, user := range m.users {
		if user.Email != nil && *user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserStore) UsernameExists(username string) (bool, error) {
	for _, user := range m.users {
		if user.Username != nil && *user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserStore) Update(user *models.User) error {
	m.updateCalls++
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserStore) List() ([]models.User, error) {
	var out []models.User
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, nil
}

// mockMailer records welcome emails on a channel so tests can wait for the
// fire-and-forget goroutine.
type mockMailer struct {
	sent chan string
}

func (m *mockMailer) SendWelcomeEmail(to, name string) error {
	m.sent <- to
	return nil
}

func seedUser(t *testing.T, store *mockUserStore, username, email, password string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{FullName: "Seeded User", Role: role}
	if username != "" {
		user.Username = &username
	}
	if email != "" {
		user.Email = &email
	}
	if password != "" {
		hash, err := bcrypt.HashPassword(password)
		require.NoError(t, err)
		user.Password = hash
	}
	require.NoError(t, store.Create(user))
	return user
}

func TestRegisterReturnsDecodableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newMockUserStore()
	svc := service.NewAuthService(store, nil, zap.NewNop())

	resp, err := svc.Register(models.RegisterRequest{
		FullName: "Asha Verma",
		Username: "asha",
		Password: "secret6",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwtPkg.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, "asha", claims.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newMockUserStore()
	seedUser(t, store, "asha", "", "secret6", models.RoleUser)
	svc := service.NewAuthService(store, nil, zap.NewNop())

	_, err := svc.Register(models.RegisterRequest{Username: "asha", Password: "secret6"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newMockUserStore()
	seedUser(t, store, "", "asha@example.com", "secret6", models.RoleUser)
	svc := service.NewAuthService(store, nil, zap.NewNop())

	_, err := svc.Register(models.RegisterRequest{Email: "asha@example.com", Password: "secret6"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegisterSendsWelcomeEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newMockUserStore()
	mailer := &mockMailer{sent: make(chan string, 1)}
	svc := service.NewAuthService(store, mailer, zap.NewNop())

	_, err := svc.Register(models.RegisterRequest{Email: "asha@example.com", Password: "secret6"})
	require.NoError(t, err)

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "asha@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("welcome email was never sent")
	}
}

func TestLoginSuccessPreservesRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newMockUserStore()
	seedUser(t, store, "admin", "", "secret6", models.RoleAdmin)
	svc := service.NewAuthService(store, nil, zap.NewNop())

	resp, err := svc.Login(models.LoginRequest{Identifier: "admin", Password: "secret6"})
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	claims, err := jwtPkg.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginFailures(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newMockUserStore()
	seedUser(t, store, "asha", "asha@example.com", "secret6", models.RoleUser)
	// OAuth-created account: no password stored.
	seedUser(t, store, "oauth-user", "oauth@example.com", "", models.RoleUser)
	svc := service.NewAuthService(store, nil, zap.NewNop())

	cases := []struct {
		name string
		req  models.LoginRequest
	}{
		{"wrong password", models.LoginRequest{Identifier: "asha", Password: "wrong-pass"}},
		{"unknown identifier", models.LoginRequest{Identifier: "nobody", Password: "secret6"}},
		{"passwordless account", models.LoginRequest{Identifier: "oauth-user", Password: "secret6"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Login(tc.req)
			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, models.ErrUnauthorized), "expected unauthorized, got %v", err)
		})
	}
}
