package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUserNotFound reports a missing caller or referenced user.
func NewUserNotFound(login string) error {
	return NewDomainError("USER_NOT_FOUND",
		fmt.Sprintf("user '%s' not found", login),
		http.StatusNotFound,
		map[string]any{"login": login})
}

// NewAccessDenied reports a ticket that is missing or not owned by the
// caller. The two cases are deliberately indistinguishable so that the
// existence of other users' tickets does not leak.
func NewAccessDenied(ticketID int64) error {
	return NewDomainError("ACCESS_DENIED",
		fmt.Sprintf("ticket %d not found or not yours", ticketID),
		http.StatusForbidden,
		nil)
}

// NewOutOfHours reports a requested time outside the operating window.
// localTime carries the Moscow wall-clock HH:MM of the request.
func NewOutOfHours(localTime string) error {
	return NewDomainError("OUT_OF_HOURS",
		fmt.Sprintf("appointments are accepted between 08:00 and 17:00 (MSK), got: %s", localTime),
		http.StatusBadRequest,
		map[string]any{"local_time": localTime})
}

// NewSlotTaken reports an (address, time) collision.
func NewSlotTaken(address, localTime string) error {
	return NewDomainError("SLOT_TAKEN",
		fmt.Sprintf("a ticket for address '%s' at '%s' already exists", address, localTime),
		http.StatusConflict,
		map[string]any{"address": address, "local_time": localTime})
}

// NewUnknownTicketType reports a type outside the fixed prefix map.
func NewUnknownTicketType(ticketType string) error {
	return NewDomainError("UNKNOWN_TICKET_TYPE",
		fmt.Sprintf("unknown ticket type '%s'", ticketType),
		http.StatusBadRequest,
		map[string]any{"ticket_type": ticketType})
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
