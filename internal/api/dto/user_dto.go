package dto

import (
	"time"

	"github.com/bankqueue/queue-service/internal/domain"
)

// UserRegisterRequest payload for new users.
type UserRegisterRequest struct {
	Name        string `json:"name"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// UserUpdateRequest payload; omitted fields keep their stored value.
type UserUpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// ChangePasswordRequest payload for password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse represents a user profile.
type UserResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Login       string    `json:"login"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUserResponse maps a domain user onto the wire form.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Login:       u.Login,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// LogResponse represents one audit record.
type LogResponse struct {
	ID        int64          `json:"id"`
	EventType string         `json:"event_type"`
	EventTime time.Time      `json:"event_time"`
	Details   map[string]any `json:"details"`
}

// NewLogListResponse maps audit records onto the wire form.
func NewLogListResponse(logs []domain.Log) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, LogResponse{
			ID:        l.ID,
			EventType: l.EventType,
			EventTime: l.EventTime,
			Details:   l.Details,
		})
	}
	return out
}
