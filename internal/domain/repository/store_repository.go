package repository

import (
	"context"
	"errors"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store lookup finds no row.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository persists stores.
type StoreRepository interface {
	// FindByID retrieves a store and its owner summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	FindByEmail(ctx context.Context, email string) (*entity.Store, error)

	// FindByOwner retrieves the store owned by ownerID.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)

	List(ctx context.Context, filter entity.StoreFilter) ([]*entity.Store, error)

	// Create persists a new store. A duplicate email yields domainerrors.ErrDuplicateStoreEmail,
	// a second store for the same owner yields domainerrors.ErrOwnerAlreadyHasStore.
	Create(ctx context.Context, store *entity.Store) error

	Count(ctx context.Context) (int64, error)
}
