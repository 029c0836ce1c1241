package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bankqueue/queue-service/internal/api/dto"
	"github.com/bankqueue/queue-service/internal/auth"
	"github.com/bankqueue/queue-service/internal/service"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// TicketsHandler manages appointment booking endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.TicketType) == "" {
		return apperrors.NewValidationError("address, ticket_type required", nil)
	}
	if req.ScheduledAt.IsZero() {
		return apperrors.NewValidationError("scheduled_at required", nil)
	}

	ticket, err := h.service.Create(c.UserContext(), principal.User.Login, service.TicketCreateInput{
		Address:     req.Address,
		TicketType:  req.TicketType,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	tickets, err := h.service.ListForUser(c.UserContext(), principal.User.Login)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketListResponse(tickets)})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	ticket, err := h.service.GetByID(c.UserContext(), principal.User.Login, ticketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// UpdateTicket PATCH /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.Update(c.UserContext(), principal.User.Login, ticketID, service.TicketUpdateInput{
		Address:     req.Address,
		TicketType:  req.TicketType,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// DeleteTicket DELETE /tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), principal.User.Login, ticketID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseTicketID(c *fiber.Ctx) (int64, error) {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || ticketID <= 0 {
		return 0, apperrors.NewValidationError("invalid ticket id", nil)
	}
	return ticketID, nil
}
