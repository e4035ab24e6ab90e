// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"storerating/config"
	"storerating/internal/delivery/api/access"
	"storerating/internal/delivery/api/router/handler"
	"storerating/internal/domain/entity"
	"storerating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	StoreHandler  *handler.StoreHandler
	UserHandler   *handler.UserHandler
	RatingHandler *handler.RatingHandler
	TestHandler   *handler.TestHandler
	Table         *access.Table
	Metrics       *metrics.Metrics `optional:"true"`
	Config        *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler   *handler.AuthHandler
	storeHandler  *handler.StoreHandler
	userHandler   *handler.UserHandler
	ratingHandler *handler.RatingHandler
	testHandler   *handler.TestHandler
	table         *access.Table
	metrics       *metrics.Metrics
	config        *config.Config
}

// routeAdder is satisfied by both *echo.Echo and *echo.Group.
type routeAdder interface {
	Add(method, path string, h echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:   params.AuthHandler,
		storeHandler:  params.StoreHandler,
		userHandler:   params.UserHandler,
		ratingHandler: params.RatingHandler,
		testHandler:   params.TestHandler,
		table:         params.Table,
		metrics:       params.Metrics,
		config:        params.Config,
	}
}

// add registers a route and records its access policy under the full route template.
func (r *router) add(g routeAdder, method, path string, h echo.HandlerFunc, policy access.Policy, m ...echo.MiddlewareFunc) {
	route := g.Add(method, path, h, m...)
	r.table.Set(route.Method, route.Path, policy)
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	admin := access.Roles(entity.RoleAdmin)
	storeOwner := access.Roles(entity.RoleStoreOwner)

	r.add(e, http.MethodGet, "/health", handler.HealthCheck, access.Public)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		path := r.config.Metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		r.add(e, http.MethodGet, path, echo.WrapHandler(r.metrics.Handler()), access.Public)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	limited := r.credentialLimiter()
	{
		r.add(authGroup, http.MethodPost, "/register", r.authHandler.Register, access.Public, limited...)
		r.add(authGroup, http.MethodPost, "/login", r.authHandler.Login, access.Public, limited...)
		r.add(authGroup, http.MethodPut, "/update-password", r.authHandler.UpdatePassword, access.Authenticated)
		r.add(authGroup, http.MethodGet, "/me", r.authHandler.Me, access.Authenticated)
	}

	// Store routes; static paths win over /:id in echo's router
	storesGroup := e.Group("/stores")
	{
		r.add(storesGroup, http.MethodGet, "", r.storeHandler.ListStores, access.Optional)
		r.add(storesGroup, http.MethodPost, "", r.storeHandler.CreateStore, admin)
		r.add(storesGroup, http.MethodPost, "/mine", r.storeHandler.CreateOwnStore, storeOwner)
		r.add(storesGroup, http.MethodGet, "/owner/dashboard", r.storeHandler.OwnerDashboard, storeOwner)
		r.add(storesGroup, http.MethodGet, "/:id", r.storeHandler.GetStore, access.Optional)
		r.add(storesGroup, http.MethodGet, "/:id/qr", r.storeHandler.StoreQRCode, access.Public)
	}

	// User management routes
	usersGroup := e.Group("/users")
	{
		r.add(usersGroup, http.MethodGet, "", r.userHandler.ListUsers, admin)
		r.add(usersGroup, http.MethodPost, "", r.userHandler.CreateUser, admin)
		r.add(usersGroup, http.MethodGet, "/dashboard-stats", r.userHandler.DashboardStats, admin)
		r.add(usersGroup, http.MethodGet, "/:id", r.userHandler.GetUser, admin)
	}

	// Rating routes
	ratingsGroup := e.Group("/ratings")
	{
		r.add(ratingsGroup, http.MethodPost, "", r.ratingHandler.SubmitRating, access.Authenticated)
		r.add(ratingsGroup, http.MethodGet, "/user", r.ratingHandler.ListUserRatings, access.Authenticated)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		r.add(testGroup, http.MethodGet, "/whoami", r.testHandler.WhoAmI, access.Authenticated)
	}
}

// credentialLimiter throttles login and registration per client IP when configured.
func (r *router) credentialLimiter() []echo.MiddlewareFunc {
	cfg := r.config.HTTP.RateLimit
	if cfg == nil || !cfg.Enabled || cfg.RequestsPerSecond <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return []echo.MiddlewareFunc{
		echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Store: store,
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return c.RealIP(), nil
			},
		}),
	}
}
