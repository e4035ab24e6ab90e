package impl

import (
	"context"
	"testing"
	"time"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	mockRepo "storerating/internal/mocks/repository"
	mockSvc "storerating/internal/mocks/service"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice Anderson",
		Email:    " Alice@Example.com ",
		Password: "Secret@123",
		Address:  "1 Main St",
	}
	expiresAt := time.Now().Add(24 * time.Hour)

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(mock.AnythingOfType("uuid.UUID")).Return("signed-token", expiresAt, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_DuplicateEmailWritesNothing(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "alice@example.com", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(existing, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "Secret@123",
		Address:  "2 Main St",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Register_PasswordPolicy(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	policyErr := domainerrors.ErrPasswordPolicy.WithDetails("password must contain at least one uppercase letter")

	fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().ValidatePasswordStrength("weakpass!").Return(policyErr)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Bob Brown",
		Email:    "bob@example.com",
		Password: "weakpass!",
		Address:  "3 Main St",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}

	t.Run("valid credentials", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("Secret@123", "stored-hash").Return(true)
		fx.tokenService.EXPECT().GenerateToken(user.ID).Return("signed-token", time.Now().Add(time.Hour), nil)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ALICE@example.com", Password: "Secret@123"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.Token)
		assert.Equal(t, user, output.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "stored-hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "Secret@123"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("storage failure is not a credential error", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user by email"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "Secret@123"})

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_UpdatePassword_WrongCurrentPasswordKeepsHash(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "stored-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("not-my-password", "stored-hash").Return(false)

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "not-my-password",
		NewPassword:     "NewSecret@1",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.userRepo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, "stored-hash", user.PasswordHash)
}

func TestAuthService_UpdatePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "stored-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("Secret@123", "stored-hash").Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("NewSecret@1").Return(nil)
	fx.hasher.EXPECT().Hash("NewSecret@1").Return("new-hash", nil)
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, user.ID, "new-hash").Return(nil)

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "Secret@123",
		NewPassword:     "NewSecret@1",
	})

	require.NoError(t, err)
}

func TestAuthService_UpdatePassword_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{UserID: userID})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Identify(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleStoreOwner}

	t.Run("valid token loads the current user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		got, err := fx.service.Identify(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleStoreOwner, got.Role)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

		_, err := fx.service.Identify(context.Background(), "bad")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("orphan").Return(&service.Claims{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Identify(ctx, "orphan")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	input := &usecase.BootstrapAdminInput{
		Name:     "System Administrator",
		Email:    "Admin@Roxiller.com",
		Password: "Admin@123",
		Address:  "Head Office",
	}

	t.Run("creates a missing admin", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "admin@roxiller.com").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().ValidatePasswordStrength("Admin@123").Return(nil)
		fx.hasher.EXPECT().Hash("Admin@123").Return("admin-hash", nil)
		fx.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleAdmin })).
			Return(nil)

		created, err := fx.service.EnsureAdmin(ctx, input)

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("keeps an existing account", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "admin@roxiller.com").
			Return(&entity.User{ID: uuid.New(), Role: entity.RoleAdmin}, nil)

		created, err := fx.service.EnsureAdmin(ctx, input)

		require.NoError(t, err)
		assert.False(t, created)
	})
}

func TestAuthService_Register_RejectsBlankNormalizedFields(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.RegisterInput
		details string
	}{
		{
			name:    "padded single character name",
			input:   &usecase.RegisterInput{Name: "a ", Email: "a@example.com", Password: "pass1234", Address: "1 Main St"},
			details: "name must be between 2 and 60 characters",
		},
		{
			name:    "whitespace only address",
			input:   &usecase.RegisterInput{Name: "Alice Anderson", Email: "a@example.com", Password: "pass1234", Address: "   "},
			details: "address must be between 1 and 400 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			output, err := fx.service.Register(context.Background(), tt.input)

			assert.Nil(t, output)
			require.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}
