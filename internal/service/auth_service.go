package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/vigilance-service/internal/auth"
	"github.com/spec-kit/vigilance-service/internal/config"
	"github.com/spec-kit/vigilance-service/internal/domain"
	"github.com/spec-kit/vigilance-service/internal/events"
	"github.com/spec-kit/vigilance-service/internal/repository"
	apperrors "github.com/spec-kit/vigilance-service/pkg/util"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// 9 digits plus v/V/x/X, or 12 digits
	nicPattern = regexp.MustCompile(`^(\d{9}[vVxX]|\d{12})$`)
)

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Name           string
	Email          string
	NIC            string
	Password       string
	RepeatPassword string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service. The token manager fails on an empty
// secret, so a missing AUTH_JWT_SECRET aborts startup here.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) (*AuthService, error) {
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	cost := cfg.BcryptCost
	if cost <= 0 {
		cost = 10
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		dispatcher: dispatcher,
		bcryptCost: cost,
	}, nil
}

// Register validates the input, enforces email and NIC uniqueness, and
// creates the user with the fixed citizen role. The first failing check
// wins and nothing is persisted before every check passes.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	if input.Name == "" || input.Email == "" || input.NIC == "" || input.Password == "" || input.RepeatPassword == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("All fields are required")
	}
	if input.Password != input.RepeatPassword {
		return nil, "", time.Time{}, apperrors.NewValidationError("Passwords do not match")
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, "", time.Time{}, apperrors.NewValidationError("Invalid email format")
	}
	if !nicPattern.MatchString(input.NIC) {
		return nil, "", time.Time{}, apperrors.NewValidationError("Invalid NIC format")
	}
	if len(input.Password) < 6 {
		return nil, "", time.Time{}, apperrors.NewValidationError("Password must be at least 6 characters")
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if _, err := s.users.GetByNIC(ctx, input.NIC); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("NIC already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		NIC:          input.NIC,
		PasswordHash: hash,
		Role:         domain.RoleCitizen,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent registration may win the insert after our checks
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, "", time.Time{}, apperrors.NewConflict("Email already registered")
		case errors.Is(err, repository.ErrDuplicateNIC):
			return nil, "", time.Time{}, apperrors.NewConflict("NIC already registered")
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	token, exp, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			UserID:    user.ID,
			Timestamp: time.Now(),
			Payload:   events.UserRegisteredPayload{Email: user.Email, Name: user.Name},
		})
	}

	return user, token, exp, nil
}

// Login authenticates a citizen by email and password. An unknown email and
// a wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	if email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials("Invalid email or password")
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials("Invalid email or password")
	}

	token, exp, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
