package usecase

import (
	"context"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitRatingInput defines a rating submission. OnBehalfOf names another user
// and is only honored for administrators.
type SubmitRatingInput struct {
	Caller     *entity.User
	OnBehalfOf *uuid.UUID
	StoreID    uuid.UUID
	Value      int
}

// SubmitRatingOutput reports the stored rating and whether it was newly created.
type SubmitRatingOutput struct {
	Rating  *entity.Rating
	Created bool
}

// RatingUsecase defines the rating ledger operations.
type RatingUsecase interface {
	Submit(ctx context.Context, input *SubmitRatingInput) (*SubmitRatingOutput, error)
	// ListByUser returns the ratings of the caller, or of onBehalfOf for administrators.
	ListByUser(ctx context.Context, caller *entity.User, onBehalfOf *uuid.UUID) ([]*entity.Rating, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error)
}
