package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storerating/internal/delivery/api/access"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	mockUsecase "storerating/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gateFixtures struct {
	echo *echo.Echo
	auth *mockUsecase.MockAuthUsecase
}

func createTestGate(t *testing.T) gateFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := mockUsecase.NewMockAuthUsecase(t)

	table := access.NewTable()
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
	e.Use(NewGate(GateParams{Table: table, Auth: auth, Logger: logger}).Handle)

	whoami := func(c echo.Context) error {
		caller, ok := access.CallerFrom(c)
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}

		return c.String(http.StatusOK, caller.Role().String())
	}

	register := func(method, path string, policy access.Policy) {
		route := e.Add(method, path, whoami)
		table.Set(route.Method, route.Path, policy)
	}
	register(http.MethodGet, "/health", access.Public)
	register(http.MethodGet, "/stores", access.Optional)
	register(http.MethodGet, "/auth/me", access.Authenticated)
	register(http.MethodGet, "/users", access.Roles(entity.RoleAdmin))
	e.GET("/unlisted", whoami)

	return gateFixtures{echo: e, auth: auth}
}

func (fx gateFixtures) do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Code
}

func TestGate_PublicIgnoresToken(t *testing.T) {
	fx := createTestGate(t)

	rec := fx.do(http.MethodGet, "/health", bearer("garbage"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestGate_Optional(t *testing.T) {
	t.Run("anonymous passes", func(t *testing.T) {
		fx := createTestGate(t)

		rec := fx.do(http.MethodGet, "/stores", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid token resolves the caller", func(t *testing.T) {
		fx := createTestGate(t)
		fx.auth.EXPECT().Identify(mock.Anything, "user-token").
			Return(&entity.User{ID: uuid.New(), Role: entity.RoleUser}, nil)

		rec := fx.do(http.MethodGet, "/stores", bearer("user-token"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user", rec.Body.String())
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		fx := createTestGate(t)
		fx.auth.EXPECT().Identify(mock.Anything, "expired").
			Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("token is expired"))

		rec := fx.do(http.MethodGet, "/stores", bearer("expired"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTHENTICATION_FAILED", errorCode(t, rec))
	})
}

func TestGate_AuthenticatedWithoutToken(t *testing.T) {
	fx := createTestGate(t)

	rec := fx.do(http.MethodGet, "/auth/me", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTHENTICATION_FAILED", errorCode(t, rec))
}

func TestGate_MalformedAuthorizationHeader(t *testing.T) {
	fx := createTestGate(t)

	rec := fx.do(http.MethodGet, "/auth/me", map[string]string{echo.HeaderAuthorization: "Basic dXNlcjpwYXNz"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGate_CustomTokenHeader(t *testing.T) {
	fx := createTestGate(t)
	fx.auth.EXPECT().Identify(mock.Anything, "legacy-token").
		Return(&entity.User{ID: uuid.New(), Role: entity.RoleStoreOwner}, nil)

	rec := fx.do(http.MethodGet, "/auth/me", map[string]string{HeaderXAuthToken: "legacy-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "store_owner", rec.Body.String())
}

func TestGate_RoleMismatchIsForbidden(t *testing.T) {
	fx := createTestGate(t)
	fx.auth.EXPECT().Identify(mock.Anything, "user-token").
		Return(&entity.User{ID: uuid.New(), Role: entity.RoleUser}, nil)

	rec := fx.do(http.MethodGet, "/users", bearer("user-token"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "AUTHORIZATION_FAILED", errorCode(t, rec))
}

func TestGate_RoleMatch(t *testing.T) {
	fx := createTestGate(t)
	fx.auth.EXPECT().Identify(mock.Anything, "admin-token").
		Return(&entity.User{ID: uuid.New(), Role: entity.RoleAdmin}, nil)

	rec := fx.do(http.MethodGet, "/users", bearer("admin-token"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}

func TestGate_UnlistedRouteFailsClosed(t *testing.T) {
	fx := createTestGate(t)

	rec := fx.do(http.MethodGet, "/unlisted", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGate_ErrorBodyOmitsDetailsForAuthFailures(t *testing.T) {
	fx := createTestGate(t)
	fx.auth.EXPECT().Identify(mock.Anything, "expired").
		Return(nil, domainerrors.ErrTokenInvalid.WithDetails("signature is invalid"))

	rec := fx.do(http.MethodGet, "/auth/me", bearer("expired"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "details")
	assert.Contains(t, body, "message")
	assert.Contains(t, body, "meta")
}
