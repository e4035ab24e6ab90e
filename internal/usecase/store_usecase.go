package usecase

import (
	"context"
	"time"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput defines a new store. OwnerID is optional.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID *uuid.UUID
}

// Rater is one entry of the owner dashboard's list of users who rated the store.
type Rater struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Rating  int
	RatedAt time.Time
}

// OwnerDashboard summarizes the ratings a store owner has received.
type OwnerDashboard struct {
	Store  *entity.Store
	Stats  entity.RatingStats
	Raters []Rater
}

// StoreUsecase defines the store registry operations.
// caller is nil for anonymous requests.
type StoreUsecase interface {
	ListStores(ctx context.Context, filter entity.StoreFilter, caller *entity.User) ([]*entity.StoreWithRating, error)
	GetStore(ctx context.Context, storeID uuid.UUID, caller *entity.User) (*entity.StoreWithRating, error)
	GetStoreByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)
	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)
	// CreateOwnStore creates a store assigned to the calling store owner.
	CreateOwnStore(ctx context.Context, ownerID uuid.UUID, input *CreateStoreInput) (*entity.Store, error)
	OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboard, error)
	// StoreQRCode renders a PNG QR code leading to the store's rating page.
	StoreQRCode(ctx context.Context, storeID uuid.UUID) ([]byte, error)
}
