package usecase

import (
	"context"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines an admin-created account. Any role may be assigned.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

// UserDetail is a user as shown to administrators. Store and StoreRating are set
// only for store owners that own a store.
type UserDetail struct {
	User        *entity.User
	Store       *entity.Store
	StoreRating *float64
}

// UserUsecase defines the administrator operations over accounts.
type UserUsecase interface {
	ListUsers(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)
	GetUserDetail(ctx context.Context, userID uuid.UUID) (*UserDetail, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
}
