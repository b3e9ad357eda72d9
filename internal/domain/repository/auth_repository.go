package repository

import (
	"context"
	"errors"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the operations for login credentials.
type AuthRepository interface {
	// CreateAuthentication persists a new credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByUserID retrieves the credential a user logs in with.
	FindAuthenticationByUserID(ctx context.Context, userID uuid.UUID, provider string) (*entity.Authentication, error)
}
