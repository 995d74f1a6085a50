package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vigilance-service/internal/api/dto"
	"github.com/spec-kit/vigilance-service/internal/service"
	apperrors "github.com/spec-kit/vigilance-service/pkg/util"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body")
	}

	user, token, _, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		NIC:            req.NIC,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		Message: "Registration successful",
		Token:   token,
		User:    dto.FromUser(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body")
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    dto.FromUser(user),
	})
}
