package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vigilance-service/internal/domain"
	"github.com/spec-kit/vigilance-service/internal/repository"
	apperrors "github.com/spec-kit/vigilance-service/pkg/util"
)

const identityKey = "auth_identity"

// Middleware validates bearer tokens and loads the authenticated user.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. On success the
// resolved user (password hash stripped) is attached to the request and no
// request without a valid token reaches business logic.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return apperrors.NewUnauthorized("Access denied. No token provided.")
	}

	userID, err := m.tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return apperrors.NewUnauthorized("Invalid or expired token")
	}

	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewUnauthorized("Invalid token. User not found.")
		}
		return apperrors.ToDomainError(err)
	}

	c.Locals(identityKey, user)
	return c.Next()
}

// UserFromContext retrieves the authenticated user.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
