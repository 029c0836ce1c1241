package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketBooked    EventType = "ticket_booked"
	EventTicketRebooked  EventType = "ticket_rebooked"
	EventTicketCancelled EventType = "ticket_cancelled"
	EventUserRegistered  EventType = "user_registered"
)

// Event represents a domain event emitted by services after commit. Events
// feed notification stubs only; the transactional audit trail is the logs
// table, not this bus.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserLogin string      `json:"user_login"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketBookedPayload payload.
type TicketBookedPayload struct {
	TicketID    int64     `json:"ticket_id"`
	Address     string    `json:"address"`
	TicketType  string    `json:"ticket_type"`
	TicketCode  string    `json:"ticket_code"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// TicketRebookedPayload payload.
type TicketRebookedPayload struct {
	TicketID    int64     `json:"ticket_id"`
	Address     string    `json:"address"`
	TicketType  string    `json:"ticket_type"`
	TicketCode  string    `json:"ticket_code"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// TicketCancelledPayload payload.
type TicketCancelledPayload struct {
	TicketID int64 `json:"ticket_id"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
}
