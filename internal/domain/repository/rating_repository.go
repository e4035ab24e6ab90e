package repository

import (
	"context"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingRepository persists ratings and answers aggregate queries over them.
type RatingRepository interface {
	// Upsert inserts the rating or, when (UserID, StoreID) already exists, overwrites
	// its value and refreshes UpdatedAt. The stored row is written back into rating
	// and created reports whether a new row was inserted.
	Upsert(ctx context.Context, rating *entity.Rating) (created bool, err error)

	// ListByUser returns a user's ratings with their stores, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error)

	// ListByStore returns a store's ratings with their authors, newest first.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error)

	// StatsByStore aggregates the ratings of one store.
	StatsByStore(ctx context.Context, storeID uuid.UUID) (entity.RatingStats, error)

	// StatsByStores aggregates many stores at once. Stores without ratings are absent from the map.
	StatsByStores(ctx context.Context, storeIDs []uuid.UUID) (map[uuid.UUID]entity.RatingStats, error)

	// ValuesByUser returns the user's rating value per store, for the given stores.
	ValuesByUser(ctx context.Context, userID uuid.UUID, storeIDs []uuid.UUID) (map[uuid.UUID]int, error)

	Count(ctx context.Context) (int64, error)
}
