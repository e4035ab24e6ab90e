// Package middleware contains API-specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storerating/internal/delivery/api/access"
	"storerating/internal/delivery/requestctx"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderXAuthToken is the alternative token header accepted next to Authorization.
const HeaderXAuthToken = "X-Auth-Token"

// GateParams holds dependencies for Gate, injected by Fx.
type GateParams struct {
	fx.In

	Table  *access.Table
	Auth   usecase.AuthUsecase
	Logger *slog.Logger
}

// Gate enforces the access policy registered for the matched route.
type Gate struct {
	table  *access.Table
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

func NewGate(params GateParams) *Gate {
	return &Gate{
		table:  params.Table,
		auth:   params.Auth,
		logger: params.Logger,
	}
}

// Handle must run after routing so that c.Path() holds the route template.
func (g *Gate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		policy := g.table.Lookup(c.Request().Method, c.Path())
		if policy.IsPublic() {
			return next(c)
		}

		token := tokenFromRequest(c.Request())
		if token == "" {
			if policy.AllowsAnonymous() {
				return next(c)
			}

			return domainerrors.ErrUnauthorized.WrapMessage("missing token")
		}

		ctx := c.Request().Context()

		user, err := g.auth.Identify(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}

		access.SetCaller(c, access.Caller{User: user})

		logger := requestctx.Logger(ctx, g.logger).With(slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(requestctx.WithLogger(ctx, logger)))

		if !policy.Permits(user.Role) {
			logger.Info("Access denied",
				slog.String("route", c.Path()),
				slog.String("role", user.Role.String()),
				slog.String("policy", policy.String()),
			)

			return domainerrors.ErrForbidden.WrapMessage("role not permitted")
		}

		return next(c)
	}
}

// tokenFromRequest reads a Bearer token, falling back to the X-Auth-Token header.
func tokenFromRequest(req *http.Request) string {
	if header := req.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}

	return strings.TrimSpace(req.Header.Get(HeaderXAuthToken))
}
