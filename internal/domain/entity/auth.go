package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypePassword is the only login provider: username plus password.
const ProviderTypePassword = "password"

// Authentication represents a single login credential of a user.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this authentication record.
	UserID         uuid.UUID // Links this credential to the User it belongs to.
	Provider       string    // Always ProviderTypePassword for now.
	ProviderUserID string    // The username the credential is looked up by.
	PasswordHash   string    // bcrypt hash of the password.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
type RefreshToken struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TokenHash  string // SHA-256 of the raw refresh token.
	DeviceInfo string // Free-form client description (user agent).
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// IsExpired reports whether the session has passed its expiry.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
