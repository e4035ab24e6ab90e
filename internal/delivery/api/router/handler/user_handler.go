package handler

import (
	"log/slog"
	"net/http"

	"storerating/internal/delivery/api/response"
	"storerating/internal/domain/entity"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC        usecase.UserUsecase
	AggregationUC usecase.AggregationUsecase
	Logger        *slog.Logger
}

// UserHandler serves the administrator's user management routes.
type UserHandler struct {
	userUC        usecase.UserUsecase
	aggregationUC usecase.AggregationUsecase
	logger        *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:        params.UserUC,
		aggregationUC: params.AggregationUC,
		logger:        params.Logger,
	}
}

// ListUsersRequest carries the user listing filters from the query string
type ListUsersRequest struct {
	Name    string `query:"name" validate:"max=60"`
	Email   string `query:"email" validate:"max=255"`
	Address string `query:"address" validate:"max=400"`
	Role    string `query:"role" validate:"max=20"`
	SortBy  string `query:"sortBy" validate:"omitempty,oneof=name email address role"`
	Order   string `query:"order" validate:"omitempty,oneof=asc desc ASC DESC"`
}

// CreateUserRequest represents the request body for admin-created accounts
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=60"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"required,max=400"`
	Role     string `json:"role" validate:"required,oneof=admin user store_owner"`
}

// ListUsers returns the filtered user listing
func (h *UserHandler) ListUsers(c echo.Context) error {
	var req ListUsersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user filters")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), entity.UserFilter{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Role:    req.Role,
		Sort:    entity.Sort{Field: req.SortBy, Order: entity.ParseSortOrder(req.Order)},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"users": newUserViews(users)})
}

// GetUser returns a user and, for store owners, their store rating
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.userUC.GetUserDetail(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": newUserDetailView(detail)})
}

// CreateUser creates an account with any role
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "User created successfully", map[string]any{"user": newUserView(user)})
}

// DashboardStats returns the global totals
func (h *UserHandler) DashboardStats(c echo.Context) error {
	stats, err := h.aggregationUC.DashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{
		"totalUsers":   stats.TotalUsers,
		"totalStores":  stats.TotalStores,
		"totalRatings": stats.TotalRatings,
	})
}
