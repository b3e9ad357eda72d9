// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the storefront. Customers and the single administrator
// share this type; the administrator is told apart only by configuration.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"` // Login handle, unique.
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the caller of an operation as resolved from its access token.
// It is only a claim; privileged operations re-verify it against storage.
type Principal struct {
	UserID   uuid.UUID
	Username string
}
