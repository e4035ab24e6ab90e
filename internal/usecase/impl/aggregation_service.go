package impl

import (
	"context"
	"log/slog"

	"storerating/internal/delivery/requestctx"
	"storerating/internal/domain/entity"
	"storerating/internal/domain/repository"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type aggregationService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// AggregationServiceParams holds dependencies for AggregationService, injected by Fx.
type AggregationServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewAggregationService is the constructor for aggregationService.
func NewAggregationService(params AggregationServiceParams) usecase.AggregationUsecase {
	return &aggregationService{
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *aggregationService) log(ctx context.Context) *slog.Logger {
	return requestctx.Logger(ctx, srv.logger)
}

func (srv *aggregationService) AverageAndCount(ctx context.Context, storeID uuid.UUID) (entity.RatingStats, error) {
	stats, err := srv.ratingRepo.StatsByStore(ctx, storeID)
	if err != nil {
		return entity.RatingStats{}, errors.Wrap(err, "failed to aggregate store ratings")
	}

	return stats, nil
}

// EnrichStoreList issues one grouped aggregate query for all stores, plus one
// query for the caller's own ratings when the caller is a user.
func (srv *aggregationService) EnrichStoreList(ctx context.Context, stores []*entity.Store, caller *entity.User) ([]*entity.StoreWithRating, error) {
	enriched := make([]*entity.StoreWithRating, 0, len(stores))
	if len(stores) == 0 {
		return enriched, nil
	}

	storeIDs := make([]uuid.UUID, 0, len(stores))
	for _, store := range stores {
		storeIDs = append(storeIDs, store.ID)
	}

	stats, err := srv.ratingRepo.StatsByStores(ctx, storeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	var own map[uuid.UUID]int
	if caller != nil && caller.Role == entity.RoleUser {
		own, err = srv.ratingRepo.ValuesByUser(ctx, caller.ID, storeIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load caller ratings")
		}
	}

	for _, store := range stores {
		item := &entity.StoreWithRating{Store: *store}
		if s, ok := stats[store.ID]; ok {
			item.AverageRating = s.Average
			item.RatingCount = s.Count
		}
		if value, ok := own[store.ID]; ok {
			item.UserRating = &value
		}

		enriched = append(enriched, item)
	}

	srv.log(ctx).Debug("Enriched store list", slog.Int("stores", len(enriched)))

	return enriched, nil
}

func (srv *aggregationService) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalStores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	totalRatings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &entity.DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}
