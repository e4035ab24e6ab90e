package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

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

// SortByAverageRating is the store listing sort field resolved after aggregation.
const SortByAverageRating = "averageRating"

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager   repository.TransactionManager
	storeRepo   repository.StoreRepository
	aggregation usecase.AggregationUsecase
	ratings     usecase.RatingUsecase
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StoreRepo   repository.StoreRepository
	Aggregation usecase.AggregationUsecase
	Ratings     usecase.RatingUsecase
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager:   params.TxManager,
		storeRepo:   params.StoreRepo,
		aggregation: params.Aggregation,
		ratings:     params.Ratings,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return requestctx.Logger(ctx, srv.logger)
}

// ListStores returns the filtered stores with their aggregates. Sorting by
// average rating happens after aggregation and keeps name order among ties.
func (srv *storeService) ListStores(ctx context.Context, filter entity.StoreFilter, caller *entity.User) ([]*entity.StoreWithRating, error) {
	requested := filter.Sort
	byAverage := requested.Field == SortByAverageRating
	if byAverage {
		filter.Sort = entity.Sort{}
	}

	stores, err := srv.storeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	enriched, err := srv.aggregation.EnrichStoreList(ctx, stores, caller)
	if err != nil {
		return nil, err
	}

	if byAverage {
		slices.SortStableFunc(enriched, func(a, b *entity.StoreWithRating) int {
			if requested.Desc() {
				return cmp.Compare(b.AverageRating, a.AverageRating)
			}

			return cmp.Compare(a.AverageRating, b.AverageRating)
		})
	}

	return enriched, nil
}

// GetStore returns the store detail with its owner summary and aggregates.
func (srv *storeService) GetStore(ctx context.Context, storeID uuid.UUID, caller *entity.User) (*entity.StoreWithRating, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return nil, domainerrors.ErrStoreNotFound.WrapMessage("failed to get store")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store")
	}

	enriched, err := srv.aggregation.EnrichStoreList(ctx, []*entity.Store{store}, caller)
	if err != nil {
		return nil, err
	}

	return enriched[0], nil
}

func (srv *storeService) GetStoreByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return nil, domainerrors.ErrStoreNotFound.WrapMessage("no store for this owner")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store by owner")
	}

	return store, nil
}

// CreateStore creates a store in one transaction. A referenced owner whose role is
// not store_owner is promoted first.
func (srv *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	store := &entity.Store{
		Name:    util.NormalizeText(input.Name),
		Email:   util.NormalizeEmail(input.Email),
		Address: util.NormalizeText(input.Address),
		OwnerID: input.OwnerID,
	}
	if err := checkLengths(
		textField{"name", store.Name, entity.StoreNameMinLength, entity.NameMaxLength},
		textField{"address", store.Address, entity.AddressMinLength, entity.AddressMaxLength},
	); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if store.OwnerID != nil {
			if err := srv.promoteOwner(ctx, repoFactory.UserRepo(), *store.OwnerID); err != nil {
				return err
			}
		}

		return errors.WithStack(repoFactory.StoreRepo().Create(ctx, store))
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Store created", slog.String("store_id", store.ID.String()))

	return store, nil
}

func (srv *storeService) promoteOwner(ctx context.Context, userRepo repository.UserRepository, ownerID uuid.UUID) error {
	owner, err := userRepo.FindByID(ctx, ownerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrOwnerNotFound.WrapMessage("failed to create store")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find owner")
	}

	if owner.Role == entity.RoleStoreOwner {
		return nil
	}

	if err := userRepo.UpdateRole(ctx, owner.ID, entity.RoleStoreOwner); err != nil {
		return errors.Wrap(err, "failed to promote owner")
	}

	srv.log(ctx).Info("Promoted user to store owner",
		slog.String("user_id", owner.ID.String()),
		slog.String("previous_role", owner.Role.String()),
	)

	return nil
}

func (srv *storeService) CreateOwnStore(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateStoreInput) (*entity.Store, error) {
	own := *input
	own.OwnerID = &ownerID

	return srv.CreateStore(ctx, &own)
}

// OwnerDashboard collects the owner's store, its aggregates and who rated it.
func (srv *storeService) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*usecase.OwnerDashboard, error) {
	store, err := srv.GetStoreByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats, err := srv.aggregation.AverageAndCount(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	ratings, err := srv.ratings.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	raters := make([]usecase.Rater, 0, len(ratings))
	for _, rating := range ratings {
		if rating.User == nil {
			continue
		}

		raters = append(raters, usecase.Rater{
			UserID:  rating.User.ID,
			Name:    rating.User.Name,
			Email:   rating.User.Email,
			Rating:  rating.Value,
			RatedAt: rating.UpdatedAt,
		})
	}

	return &usecase.OwnerDashboard{
		Store:  store,
		Stats:  stats,
		Raters: raters,
	}, nil
}

func (srv *storeService) StoreQRCode(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("failed to render QR code")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	png, err := srv.qrService.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}
