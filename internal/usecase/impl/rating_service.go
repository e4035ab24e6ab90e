package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storerating/internal/delivery/requestctx"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/infra/metrics"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	ratingRepo repository.RatingRepository
	publisher  service.EventPublisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	RatingRepo repository.RatingRepository
	Publisher  service.EventPublisher
	Metrics    *metrics.Metrics `optional:"true"`
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo: params.RatingRepo,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return requestctx.Logger(ctx, srv.logger)
}

// ratingSubject decides whose ratings a request acts on. Only administrators may
// name a user other than themselves.
func ratingSubject(caller *entity.User, onBehalfOf *uuid.UUID) (uuid.UUID, error) {
	if caller == nil {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("rating requires a signed-in user")
	}

	if onBehalfOf == nil || *onBehalfOf == caller.ID {
		return caller.ID, nil
	}

	if caller.Role != entity.RoleAdmin {
		return uuid.Nil, domainerrors.ErrForbidden.WrapMessage("only administrators may act for another user")
	}

	return *onBehalfOf, nil
}

// Submit stores the rating with a single upsert, so concurrent submissions for the
// same user and store leave one row holding the last value.
func (srv *ratingService) Submit(ctx context.Context, input *usecase.SubmitRatingInput) (*usecase.SubmitRatingOutput, error) {
	userID, err := ratingSubject(input.Caller, input.OnBehalfOf)
	if err != nil {
		return nil, err
	}

	if !entity.IsValidRatingValue(input.Value) {
		return nil, domainerrors.ErrInvalidRating.WithDetails(fmt.Sprintf("got %d", input.Value))
	}

	rating := &entity.Rating{
		UserID:  userID,
		StoreID: input.StoreID,
		Value:   input.Value,
	}

	created, err := srv.ratingRepo.Upsert(ctx, rating)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if srv.metrics != nil {
		srv.metrics.RatingSubmitted(created)
	}

	srv.log(ctx).Info("Rating submitted",
		slog.String("rating_id", rating.ID.String()),
		slog.String("store_id", rating.StoreID.String()),
		slog.Int("value", rating.Value),
		slog.Bool("created", created),
	)

	srv.publishSubmitted(ctx, rating, created)

	return &usecase.SubmitRatingOutput{Rating: rating, Created: created}, nil
}

// publishSubmitted never fails the submission; the rating is already stored.
func (srv *ratingService) publishSubmitted(ctx context.Context, rating *entity.Rating, created bool) {
	event := &service.RatingSubmittedEvent{
		RequestID:  requestctx.RequestIDFrom(ctx),
		RatingID:   rating.ID.String(),
		UserID:     rating.UserID.String(),
		StoreID:    rating.StoreID.String(),
		Value:      rating.Value,
		Created:    created,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishRatingSubmitted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish rating event",
			slog.String("rating_id", event.RatingID),
			slog.Any("error", err),
		)
	}
}

func (srv *ratingService) ListByUser(ctx context.Context, caller *entity.User, onBehalfOf *uuid.UUID) ([]*entity.Rating, error) {
	userID, err := ratingSubject(caller, onBehalfOf)
	if err != nil {
		return nil, err
	}

	ratings, err := srv.ratingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user ratings")
	}

	return ratings, nil
}

func (srv *ratingService) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error) {
	ratings, err := srv.ratingRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store ratings")
	}

	return ratings, nil
}
