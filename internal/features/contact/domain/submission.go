package domain

import (
	"errors"
	"strings"
	"time"

	"holo-lookup/internal/core/validate"
)

var (
	// ErrMissingFields is returned when name, email or phone is empty.
	ErrMissingFields = errors.New("name, email and phone are required")
	// ErrInvalidEmail is returned when the email does not look like local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidPhone is returned when the phone is not a Vietnamese number.
	ErrInvalidPhone = errors.New("invalid phone")
)

// Submission is a quick-contact form entry.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the required fields, then the email, then the phone, and
// reports the first failure.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" || s.Email == "" || s.Phone == "" {
		return ErrMissingFields
	}
	if !validate.Email(s.Email) {
		return ErrInvalidEmail
	}
	if !validate.Phone(s.Phone) {
		return ErrInvalidPhone
	}
	return nil
}
