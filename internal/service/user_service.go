package service

import (
	"fmt"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

func (s *UserService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.users.List()
}

// UpdateRole changes a user's role. Unknown role values are rejected before
// the store is touched.
func (s *UserService) UpdateRole(userID uint, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, models.ErrValidation)
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
