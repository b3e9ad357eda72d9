package usecase

import (
	"context"

	"sweets/internal/domain/entity"
)

// AccessGate decides whether a principal is the administrator. The decision is
// made against storage on every call.
type AccessGate interface {
	IsAdmin(ctx context.Context, principal entity.Principal) bool

	// RequireAdmin returns a wrapped ErrAccessDenied unless principal is the administrator.
	RequireAdmin(ctx context.Context, principal entity.Principal) error
}
