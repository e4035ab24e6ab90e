// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (normalized) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users matching the filter, in the filter's sort order.
	List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)

	// Create persists a new user. A duplicate email yields domainerrors.ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored hash of a user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateRole changes the role of a user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	Count(ctx context.Context) (int64, error)
}
