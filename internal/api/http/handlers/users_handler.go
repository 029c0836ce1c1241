package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bankqueue/queue-service/internal/api/dto"
	"github.com/bankqueue/queue-service/internal/auth"
	"github.com/bankqueue/queue-service/internal/service"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// UsersHandler manages profile and audit log endpoints.
type UsersHandler struct {
	users *service.UserService
	logs  *service.LogService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService, logService *service.LogService) *UsersHandler {
	return &UsersHandler{users: userService, logs: logService}
}

// Register POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Login) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("login, email, password required", nil)
	}

	user, err := h.users.Register(c.UserContext(), service.UserRegisterInput{
		Name:        req.Name,
		Login:       req.Login,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// GetProfile GET /users/me.
func (h *UsersHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.users.GetByLogin(c.UserContext(), principal.User.Login)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdateProfile PATCH /users/me.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.users.Update(c.UserContext(), principal.User.Login, service.UserUpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// ChangePassword POST /users/me/password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current_password, new_password required", nil)
	}

	if err := h.users.ChangePassword(c.UserContext(), principal.User.Login, service.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteProfile DELETE /users/me.
func (h *UsersHandler) DeleteProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.users.Delete(c.UserContext(), principal.User.Login); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLogs GET /users/me/logs.
func (h *UsersHandler) ListLogs(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	logs, err := h.logs.ListForUser(c.UserContext(), principal.User.Login)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewLogListResponse(logs)})
}
