// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up as a normal user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdatePasswordInput defines the data required to change one's own password.
type UpdatePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// BootstrapAdminInput describes the administrator seeded at startup.
type BootstrapAdminInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// --- Output DTOs ---

// AuthOutput carries the issued token and the signed-in user.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase defines the credential operations: sign-up, sign-in and password changes.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// Identify resolves a bearer token to the user it was issued for.
	// An invalid token or an unknown user yields an authentication error.
	Identify(ctx context.Context, token string) (*entity.User, error)
	// EnsureAdmin creates the bootstrap administrator unless a user with that email exists.
	// created reports whether a new account was written.
	EnsureAdmin(ctx context.Context, input *BootstrapAdminInput) (created bool, err error)
}
