package dto

import (
	"time"

	"github.com/bankqueue/queue-service/internal/domain"
)

// CreateTicketRequest payload for booking an appointment.
type CreateTicketRequest struct {
	Address     string    `json:"address"`
	TicketType  string    `json:"ticket_type"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// UpdateTicketRequest payload; omitted fields keep their stored value.
type UpdateTicketRequest struct {
	Address     *string    `json:"address"`
	TicketType  *string    `json:"ticket_type"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// TicketResponse represents one appointment.
type TicketResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Address     string    `json:"address"`
	TicketType  string    `json:"ticket_type"`
	TicketCode  string    `json:"ticket_code"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTicketResponse maps a domain ticket onto the wire form.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Address:     t.Address,
		TicketType:  t.TicketType,
		TicketCode:  t.TicketCode,
		ScheduledAt: t.ScheduledAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTicketListResponse maps a slice of domain tickets.
func NewTicketListResponse(tickets []domain.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, NewTicketResponse(&tickets[i]))
	}
	return out
}
