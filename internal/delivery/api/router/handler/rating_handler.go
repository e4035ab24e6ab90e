package handler

import (
	"log/slog"
	"net/http"

	"storerating/internal/delivery/api/access"
	"storerating/internal/delivery/api/response"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// RatingHandler serves rating submission and the caller's rating history.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// SubmitRatingRequest represents the request body for a rating. UserID is only
// honored for administrators.
type SubmitRatingRequest struct {
	StoreID uuid.UUID  `json:"storeId" validate:"required"`
	Rating  int        `json:"rating"`
	UserID  *uuid.UUID `json:"userId"`
}

// ListUserRatingsRequest names the user whose ratings are listed
type ListUserRatingsRequest struct {
	UserID string `query:"userId" validate:"omitempty,uuid"`
}

// SubmitRating creates or replaces the caller's rating of a store
func (h *RatingHandler) SubmitRating(c echo.Context) error {
	caller, ok := access.CallerFrom(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("submit rating")
	}

	var req SubmitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.ratingUC.Submit(c.Request().Context(), &usecase.SubmitRatingInput{
		Caller:     caller.User,
		OnBehalfOf: req.UserID,
		StoreID:    req.StoreID,
		Value:      req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.SuccessWithMessage(c, status, "Rating submitted successfully", map[string]any{
		"rating":  newRatingView(output.Rating),
		"created": output.Created,
	})
}

// ListUserRatings returns the caller's ratings, newest first
func (h *RatingHandler) ListUserRatings(c echo.Context) error {
	caller, ok := access.CallerFrom(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("list ratings")
	}

	var req ListUserRatingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating filters")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	var onBehalfOf *uuid.UUID
	if req.UserID != "" {
		id := uuid.MustParse(req.UserID)
		onBehalfOf = &id
	}

	ratings, err := h.ratingUC.ListByUser(c.Request().Context(), caller.User, onBehalfOf)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"ratings": newRatingViews(ratings)})
}
