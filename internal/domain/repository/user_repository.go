// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"vitacart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user does not exist or is hidden by
// soft deletion.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when the unique email constraint fires.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicatePhone is returned when the unique phone constraint fires.
var ErrDuplicatePhone = errors.New("phone number already registered")

// UserRepository defines the standard operations for user persistence.
// Reads exclude soft-deleted rows unless stated otherwise.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Soft-deleted users are included; callers authenticating must check
	// the Deleted flag themselves so the failure stays indistinguishable
	// from a wrong password.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a single user by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// List returns all non-deleted users.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// SoftDelete marks the user deleted at the given time. Returns
	// ErrUserNotFound when the row is absent or already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}
