package handler

import (
	"log/slog"
	"net/http"

	"storerating/internal/delivery/api/access"
	"storerating/internal/delivery/api/response"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves store listings, creation and the owner dashboard.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// ListStoresRequest carries the listing filters from the query string
type ListStoresRequest struct {
	Name    string `query:"name" validate:"max=60"`
	Email   string `query:"email" validate:"max=255"`
	Address string `query:"address" validate:"max=400"`
	SortBy  string `query:"sortBy" validate:"omitempty,oneof=name email address averageRating"`
	Order   string `query:"order" validate:"omitempty,oneof=asc desc ASC DESC"`
}

// CreateStoreRequest represents the request body for store creation
type CreateStoreRequest struct {
	Name    string     `json:"name" validate:"required,min=1,max=60"`
	Email   string     `json:"email" validate:"required,email,max=255"`
	Address string     `json:"address" validate:"required,max=400"`
	OwnerID *uuid.UUID `json:"ownerId"`
}

func (req *CreateStoreRequest) input() *usecase.CreateStoreInput {
	return &usecase.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	}
}

// ListStores returns the store listing. A signed-in user also sees their own rating.
func (h *StoreHandler) ListStores(c echo.Context) error {
	var req ListStoresRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store filters")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	filter := entity.StoreFilter{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Sort:    entity.Sort{Field: req.SortBy, Order: entity.ParseSortOrder(req.Order)},
	}

	stores, err := h.storeUC.ListStores(c.Request().Context(), filter, access.UserFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"stores": newRatedStoreViews(stores)})
}

// GetStore returns one store with its owner summary and aggregates
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), storeID, access.UserFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"store": newRatedStoreView(store)})
}

// StoreQRCode returns a PNG QR code for the store's rating page
func (h *StoreHandler) StoreQRCode(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.storeUC.StoreQRCode(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateStore lets an administrator create a store and optionally assign its owner
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Store created successfully", map[string]any{"store": newStoreView(store)})
}

// CreateOwnStore lets a store owner create the store assigned to themselves
func (h *StoreHandler) CreateOwnStore(c echo.Context) error {
	caller, ok := access.CallerFrom(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("create own store")
	}

	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.storeUC.CreateOwnStore(c.Request().Context(), caller.ID(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Store created successfully", map[string]any{"store": newStoreView(store)})
}

// OwnerDashboard returns the caller's store, its aggregates and who rated it
func (h *StoreHandler) OwnerDashboard(c echo.Context) error {
	caller, ok := access.CallerFrom(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("owner dashboard")
	}

	dashboard, err := h.storeUC.OwnerDashboard(c.Request().Context(), caller.ID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDashboardView(dashboard))
}
