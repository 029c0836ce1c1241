package domain

import "time"

// Audit event type tags, one per mutating operation.
const (
	EventUserRegistered      = "USER_REGISTERED"
	EventUserUpdated         = "USER_UPDATED"
	EventUserDeleted         = "USER_DELETED"
	EventUserPasswordUpdated = "USER_PASSWORD_UPDATED"
	EventTicketCreated       = "TICKET_CREATED"
	EventTicketUpdated       = "TICKET_UPDATED"
	EventTicketDeleted       = "TICKET_DELETED"
)

// Log is an immutable audit record. Written exactly once per mutating
// operation, never updated or deleted by the application.
type Log struct {
	ID        int64
	UserID    int64
	EventType string
	EventTime time.Time
	Details   map[string]any
}
