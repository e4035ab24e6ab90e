package impl

import (
	"context"
	"log/slog"

	"storerating/internal/delivery/requestctx"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/usecase"
	"storerating/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return requestctx.Logger(ctx, srv.logger)
}

// Register creates a normal user and signs them in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", util.NormalizeEmail(input.Email)))

	user, err := createAccount(ctx, srv.userRepo, srv.hasher, srv.log(ctx), newAccount{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
		Role:     entity.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return srv.issueToken(user)
}

// Login verifies the credentials and issues a token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login attempt for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login attempt with wrong password", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	return srv.issueToken(user)
}

// UpdatePassword replaces the caller's password after checking the current one.
// The stored hash is only written once every check has passed.
func (srv *authService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	user, err := findUserByID(ctx, srv.userRepo, input.UserID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("current password is incorrect")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("failed to update password")
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.String("user_id", user.ID.String()))

	return nil
}

func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return findUserByID(ctx, srv.userRepo, userID)
}

// Identify loads the user behind a token on every call, so a role change takes
// effect on the next request.
func (srv *authService) Identify(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token subject no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}

// EnsureAdmin seeds the bootstrap administrator. An existing account with the
// same email is left untouched, whatever its role.
func (srv *authService) EnsureAdmin(ctx context.Context, input *usecase.BootstrapAdminInput) (bool, error) {
	user, err := createAccount(ctx, srv.userRepo, srv.hasher, srv.log(ctx), newAccount{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
		Role:     entity.RoleAdmin,
	})
	if errors.Is(err, domainerrors.ErrDuplicateEmail) {
		srv.log(ctx).Debug("Bootstrap admin already exists", slog.String("email", util.NormalizeEmail(input.Email)))

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrap admin created", slog.String("user_id", user.ID.String()))

	return true, nil
}

func (srv *authService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
