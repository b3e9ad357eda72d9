// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by login handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// AcquireSessionMutex locks the user row so concurrent logins serialize their session count.
	AcquireSessionMutex(ctx context.Context, userID uuid.UUID) error

	// CountCustomers counts every user except the administrator.
	CountCustomers(ctx context.Context, adminID uuid.UUID) (int64, error)

	// ListCustomerStats returns per-customer order and review aggregates, excluding the administrator.
	ListCustomerStats(ctx context.Context, adminID uuid.UUID) ([]*entity.CustomerStats, error)
}
