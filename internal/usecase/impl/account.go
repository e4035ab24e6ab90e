// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// newAccount is the normalized input of every account-creating flow.
type newAccount struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

// createAccount persists a new user after the duplicate and policy checks. The password is hashed
// here, before the repository sees the user.
func createAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
	input newAccount,
) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WithDetails(input.Role.String())
	}

	name := util.NormalizeText(input.Name)
	address := util.NormalizeText(input.Address)
	if err := checkLengths(
		textField{"name", name, entity.UserNameMinLength, entity.NameMaxLength},
		textField{"address", address, entity.AddressMinLength, entity.AddressMaxLength},
	); err != nil {
		return nil, err
	}

	email := util.NormalizeEmail(input.Email)

	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("account creation failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	if err := hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	passwordHash, err := hasher.Hash(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Address:      address,
		Role:         input.Role,
	}

	// A concurrent sign-up with the same email still fails here on the unique constraint.
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// findUserByID maps the repository's not-found sentinel to the domain error.
func findUserByID(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to find user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// textField is a normalized value with its inclusive character bounds.
type textField struct {
	name     string
	value    string
	min, max int
}

// checkLengths rejects normalized values outside their bounds. Whitespace-only input
// normalizes to "" and fails here rather than at the database.
func checkLengths(fields ...textField) error {
	for _, f := range fields {
		n := utf8.RuneCountInString(f.value)
		if n < f.min || n > f.max {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("%s must be between %d and %d characters", f.name, f.min, f.max),
			)
		}
	}

	return nil
}
