package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bankqueue/queue-service/internal/api/dto"
	"github.com/bankqueue/queue-service/internal/auth"
	"github.com/bankqueue/queue-service/internal/service"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// AuthHandler manages login and logout.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Login) == "" || req.Password == "" {
		return apperrors.NewValidationError("login, password required", nil)
	}

	result, err := h.service.Login(c.UserContext(), req.Login, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt}})
}

// Logout POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Token == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.Logout(c.UserContext(), principal.Token); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
