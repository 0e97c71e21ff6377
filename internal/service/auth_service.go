package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/bcrypt"
	jwtPkg "github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/jwt"
)

// UserStore is the slice of the user repository the auth and user services
// depend on.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByIdentifier(identifier string) (*models.User, error)
	EmailExists(email string) (bool, error)
	UsernameExists(username string) (bool, error)
	Update(user *models.User) error
	List() ([]models.User, error)
}

// WelcomeMailer sends the post-registration email.
type WelcomeMailer interface {
	SendWelcomeEmail(to, name string) error
}

type AuthService struct {
	users  UserStore
	mailer WelcomeMailer
	logger *zap.Logger
}

func NewAuthService(users UserStore, mailer WelcomeMailer, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		mailer: mailer,
		logger: logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Email != "" {
		exists, err := s.users.EmailExists(req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("email already registered: %w", models.ErrConflict)
		}
	}
	if req.Username != "" {
		exists, err := s.users.UsernameExists(req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("username already taken: %w", models.ErrConflict)
		}
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}
	if req.Username != "" {
		user.Username = &req.Username
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil && user.Email != nil {
		// Fire and forget; a mail failure must not fail registration.
		go s.mailer.SendWelcomeEmail(*user.Email, user.FullName)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByIdentifier(req.Identifier)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
	}

	// OAuth-created accounts have no password and cannot log in here.
	if user.Password == "" {
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		s.logger.Debug("password mismatch on login", zap.String("identifier", req.Identifier))
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
	}

	token, err := jwtPkg.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %v", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
