package impl

import (
	"context"
	"log/slog"

	"storerating/internal/delivery/requestctx"
	"storerating/internal/domain/entity"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	storeRepo   repository.StoreRepository
	aggregation usecase.AggregationUsecase
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	StoreRepo   repository.StoreRepository
	Aggregation usecase.AggregationUsecase
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:    params.UserRepo,
		storeRepo:   params.StoreRepo,
		aggregation: params.Aggregation,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return requestctx.Logger(ctx, srv.logger)
}

func (srv *userService) ListUsers(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUserDetail returns the user and, for a store owner with a store, that store
// and its average rating.
func (srv *userService) GetUserDetail(ctx context.Context, userID uuid.UUID) (*usecase.UserDetail, error) {
	user, err := findUserByID(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	detail := &usecase.UserDetail{User: user}
	if user.Role != entity.RoleStoreOwner {
		return detail, nil
	}

	store, err := srv.storeRepo.FindByOwner(ctx, user.ID)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return detail, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find owned store")
	}

	stats, err := srv.aggregation.AverageAndCount(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	detail.Store = store
	detail.StoreRating = &stats.Average

	return detail, nil
}

// CreateUser creates an account with any role on behalf of an administrator.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user, err := createAccount(ctx, srv.userRepo, srv.hasher, srv.log(ctx), newAccount{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
		Role:     input.Role,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created by admin",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}
