package domain

import "time"

// User is the domain model for clients who book branch appointments.
// Login, email and phone number are unique across the directory.
type User struct {
	ID           int64
	Name         string
	Login        string
	Email        string
	PhoneNumber  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
