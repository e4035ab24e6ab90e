package usecase

import (
	"context"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// AggregationUsecase derives rating figures from the rating ledger. Nothing it
// returns is stored redundantly.
type AggregationUsecase interface {
	// AverageAndCount returns zero values for a store without ratings.
	AverageAndCount(ctx context.Context, storeID uuid.UUID) (entity.RatingStats, error)
	// EnrichStoreList attaches average and count to every store, and the caller's
	// own rating when the caller has the user role.
	EnrichStoreList(ctx context.Context, stores []*entity.Store, caller *entity.User) ([]*entity.StoreWithRating, error)
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}
