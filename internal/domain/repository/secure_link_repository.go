package repository

import (
	"context"
	"time"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSecureLinkNotFound is returned when no link matches.
var ErrSecureLinkNotFound = errors.New("secure link not found")

// SecureLinkRepository persists secure links.
type SecureLinkRepository interface {
	FindByToken(ctx context.Context, token string) (*entity.SecureLink, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.SecureLink, error)
	Create(ctx context.Context, link *entity.SecureLink) error

	// UpdateExpiry rewrites only expires_at; the token is immutable.
	UpdateExpiry(ctx context.Context, id uuid.UUID, expiresAt *time.Time) error
}
