package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storerating/config"
	"storerating/internal/delivery/api/access"
	apimiddleware "storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/router"
	"storerating/internal/delivery/api/router/handler"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	mockUsecase "storerating/internal/mocks/usecase"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo        *echo.Echo
	auth        *mockUsecase.MockAuthUsecase
	stores      *mockUsecase.MockStoreUsecase
	users       *mockUsecase.MockUserUsecase
	ratings     *mockUsecase.MockRatingUsecase
	aggregation *mockUsecase.MockAggregationUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	auth := mockUsecase.NewMockAuthUsecase(t)
	stores := mockUsecase.NewMockStoreUsecase(t)
	users := mockUsecase.NewMockUserUsecase(t)
	ratings := mockUsecase.NewMockRatingUsecase(t)
	aggregation := mockUsecase.NewMockAggregationUsecase(t)
	table := access.NewTable()

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		Gate:   apimiddleware.NewGate(apimiddleware.GateParams{Table: table, Auth: auth, Logger: logger}),
		RouterParams: router.RouterParams{
			AuthHandler:   handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: auth, Logger: logger}),
			StoreHandler:  handler.NewStoreHandler(handler.StoreHandlerParams{StoreUC: stores, Logger: logger}),
			UserHandler:   handler.NewUserHandler(handler.UserHandlerParams{UserUC: users, AggregationUC: aggregation, Logger: logger}),
			RatingHandler: handler.NewRatingHandler(handler.RatingHandlerParams{RatingUC: ratings, Logger: logger}),
			TestHandler:   handler.NewTestHandler(),
			Table:         table,
			Config:        cfg,
		},
	})

	return serverFixtures{
		echo:        e,
		auth:        auth,
		stores:      stores,
		users:       users,
		ratings:     ratings,
		aggregation: aggregation,
	}
}

// signIn makes token resolve to a user with role.
func (fx serverFixtures) signIn(token string, role entity.Role) *entity.User {
	user := &entity.User{ID: uuid.New(), Name: "Signed In User", Email: "me@example.com", Role: role}
	fx.auth.EXPECT().Identify(mock.Anything, token).Return(user, nil)

	return user
}

func (fx serverFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Details string          `json:"details"`
	Data    json.RawMessage `json:"data"`
	Meta    struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.NotEmpty(t, body.Meta.RequestID)
	assert.Equal(t, body.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestServer_Register(t *testing.T) {
	t.Run("validation failure lists fields", func(t *testing.T) {
		fx := createTestServer(t)

		rec := fx.do(http.MethodPost, "/auth/register", "", `{"name":"A","email":"nope","password":"x","address":"Somewhere"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Contains(t, body.Details, "name must be at least 2 characters")
		assert.Contains(t, body.Details, "email must be a valid email address")
	})

	t.Run("success returns token and user without hash", func(t *testing.T) {
		fx := createTestServer(t)
		user := &entity.User{ID: uuid.New(), Name: "Alice Anderson", Email: "alice@example.com", PasswordHash: "secret-hash", Role: entity.RoleUser}

		fx.auth.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{
				Name:     "Alice Anderson",
				Email:    "alice@example.com",
				Password: "Secret@123",
				Address:  "1 Main St",
			}).
			Return(&usecase.AuthOutput{Token: "signed", ExpiresAt: time.Now().Add(time.Hour), User: user}, nil)

		rec := fx.do(http.MethodPost, "/auth/register", "", `{"name":"Alice Anderson","email":"alice@example.com","password":"Secret@123","address":"1 Main St"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret-hash")

		var data handler.AuthResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, "signed", data.Token)
		assert.Equal(t, "user", data.User.Role)
	})

	t.Run("whitespace is collapsed before validation", func(t *testing.T) {
		fx := createTestServer(t)

		rec := fx.do(http.MethodPost, "/auth/register", "", `{"name":"a ","email":"a@example.com","password":"Secret@123","address":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Contains(t, body.Details, "name must be at least 2 characters")
		assert.Contains(t, body.Details, "address is required")
	})

	t.Run("padded fields reach the usecase normalized", func(t *testing.T) {
		fx := createTestServer(t)
		user := &entity.User{ID: uuid.New(), Name: "Alice Anderson", Email: "alice@example.com", Role: entity.RoleUser}

		fx.auth.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{
				Name:     "Alice Anderson",
				Email:    "alice@example.com",
				Password: "Secret@123",
				Address:  "1 Main St",
			}).
			Return(&usecase.AuthOutput{Token: "signed", ExpiresAt: time.Now().Add(time.Hour), User: user}, nil)

		rec := fx.do(http.MethodPost, "/auth/register", "", `{"name":"  Alice   Anderson ","email":" Alice@Example.com","password":"Secret@123","address":"1  Main St "}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestServer(t)

		fx.auth.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrDuplicateEmail.WrapMessage("account creation failed"))

		rec := fx.do(http.MethodPost, "/auth/register", "", `{"name":"Alice Anderson","email":"alice@example.com","password":"Secret@123","address":"1 Main St"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DUPLICATE_EMAIL", decode(t, rec).Code)
	})
}

func TestServer_Login_InvalidCredentials(t *testing.T) {
	fx := createTestServer(t)

	fx.auth.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	rec := fx.do(http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Code)
}

func TestServer_UpdatePassword_UsesCaller(t *testing.T) {
	fx := createTestServer(t)
	user := fx.signIn("user-token", entity.RoleUser)

	fx.auth.EXPECT().
		UpdatePassword(mock.Anything, &usecase.UpdatePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "Secret@123",
			NewPassword:     "NewSecret@1",
		}).
		Return(nil)

	rec := fx.do(http.MethodPut, "/auth/update-password", "user-token", `{"currentPassword":"Secret@123","newPassword":"NewSecret@1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password updated successfully", decode(t, rec).Message)
}

func TestServer_ListStores_AnonymousWithSort(t *testing.T) {
	fx := createTestServer(t)
	storeID := uuid.New()

	fx.stores.EXPECT().
		ListStores(mock.Anything, entity.StoreFilter{
			Name: "bak",
			Sort: entity.Sort{Field: "averageRating", Order: entity.SortDesc},
		}, (*entity.User)(nil)).
		Return([]*entity.StoreWithRating{
			{Store: entity.Store{ID: storeID, Name: "Corner Bakery"}, AverageRating: 4.5, RatingCount: 2},
		}, nil)

	rec := fx.do(http.MethodGet, "/stores?name=bak&sortBy=averageRating&order=desc", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Stores []map[string]any `json:"stores"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	require.Len(t, data.Stores, 1)
	assert.Equal(t, 4.5, data.Stores[0]["averageRating"])
	assert.Nil(t, data.Stores[0]["userRating"])
}

func TestServer_ListStores_RejectsUnknownSort(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/stores?sortBy=password", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreateStore(t *testing.T) {
	body := `{"name":"Corner Bakery","email":"bakery@example.com","address":"12 Baker St"}`

	t.Run("forbidden for users", func(t *testing.T) {
		fx := createTestServer(t)
		fx.signIn("user-token", entity.RoleUser)

		rec := fx.do(http.MethodPost, "/stores", "user-token", body)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		fx := createTestServer(t)

		rec := fx.do(http.MethodPost, "/stores", "", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		fx := createTestServer(t)
		fx.signIn("admin-token", entity.RoleAdmin)

		rec := fx.do(http.MethodPost, "/stores", "admin-token", `{"name":"  ","email":"bakery@example.com","address":"12 Baker St"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Code)
	})

	t.Run("admin creates", func(t *testing.T) {
		fx := createTestServer(t)
		fx.signIn("admin-token", entity.RoleAdmin)

		fx.stores.EXPECT().
			CreateStore(mock.Anything, &usecase.CreateStoreInput{
				Name:    "Corner Bakery",
				Email:   "bakery@example.com",
				Address: "12 Baker St",
			}).
			Return(&entity.Store{ID: uuid.New(), Name: "Corner Bakery"}, nil)

		rec := fx.do(http.MethodPost, "/stores", "admin-token", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestServer_OwnerDashboard(t *testing.T) {
	fx := createTestServer(t)
	owner := fx.signIn("owner-token", entity.RoleStoreOwner)
	store := &entity.Store{ID: uuid.New(), Name: "Corner Bakery", OwnerID: &owner.ID}

	fx.stores.EXPECT().OwnerDashboard(mock.Anything, owner.ID).Return(&usecase.OwnerDashboard{
		Store: store,
		Stats: entity.RatingStats{Average: 4, Count: 1},
		Raters: []usecase.Rater{
			{UserID: uuid.New(), Name: "Alice Anderson", Email: "alice@example.com", Rating: 4, RatedAt: time.Now()},
		},
	}, nil)

	rec := fx.do(http.MethodGet, "/stores/owner/dashboard", "owner-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var data handler.DashboardView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, int64(1), data.Stats.TotalRatings)
	require.Len(t, data.UsersWhoRated, 1)
	assert.Equal(t, 4, data.UsersWhoRated[0].Rating)
}

func TestServer_OwnerDashboard_ForbiddenForUsers(t *testing.T) {
	fx := createTestServer(t)
	fx.signIn("user-token", entity.RoleUser)

	rec := fx.do(http.MethodGet, "/stores/owner/dashboard", "user-token", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_StoreQRCode(t *testing.T) {
	fx := createTestServer(t)
	storeID := uuid.New()

	fx.stores.EXPECT().StoreQRCode(mock.Anything, storeID).Return([]byte("\x89PNG"), nil)

	rec := fx.do(http.MethodGet, "/stores/"+storeID.String()+"/qr", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestServer_GetStore_BadID(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/stores/not-a-uuid", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Code)
}

func TestServer_SubmitRating(t *testing.T) {
	storeID := uuid.New()

	t.Run("created", func(t *testing.T) {
		fx := createTestServer(t)
		user := fx.signIn("user-token", entity.RoleUser)

		fx.ratings.EXPECT().
			Submit(mock.Anything, &usecase.SubmitRatingInput{Caller: user, StoreID: storeID, Value: 4}).
			Return(&usecase.SubmitRatingOutput{
				Rating:  &entity.Rating{ID: uuid.New(), UserID: user.ID, StoreID: storeID, Value: 4},
				Created: true,
			}, nil)

		rec := fx.do(http.MethodPost, "/ratings", "user-token", `{"storeId":"`+storeID.String()+`","rating":4}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Rating submitted successfully", decode(t, rec).Message)
	})

	t.Run("out of range", func(t *testing.T) {
		fx := createTestServer(t)
		fx.signIn("user-token", entity.RoleUser)

		fx.ratings.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidRating.WithDetails("got 6"))

		rec := fx.do(http.MethodPost, "/ratings", "user-token", `{"storeId":"`+storeID.String()+`","rating":6}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		fx := createTestServer(t)
		fx.signIn("user-token", entity.RoleUser)

		rec := fx.do(http.MethodPost, "/ratings", "user-token", `{"storeId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestServer(t)

		rec := fx.do(http.MethodPost, "/ratings", "", `{"storeId":"`+storeID.String()+`","rating":4}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_DashboardStats(t *testing.T) {
	fx := createTestServer(t)
	fx.signIn("admin-token", entity.RoleAdmin)

	fx.aggregation.EXPECT().DashboardStats(mock.Anything).
		Return(&entity.DashboardStats{TotalUsers: 5, TotalStores: 2, TotalRatings: 9}, nil)

	rec := fx.do(http.MethodGet, "/users/dashboard-stats", "admin-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalUsers":5,"totalStores":2,"totalRatings":9}`, string(decode(t, rec).Data))
}

func TestServer_InternalErrorsAreGeneric(t *testing.T) {
	fx := createTestServer(t)
	fx.signIn("admin-token", entity.RoleAdmin)

	fx.users.EXPECT().ListUsers(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(io.ErrUnexpectedEOF, `SELECT * FROM "users"`))

	rec := fx.do(http.MethodGet, "/users", "admin-token", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "SELECT")
	assert.Empty(t, decode(t, rec).Details)
}

func TestServer_UnclassifiedErrorsRenderInternalError(t *testing.T) {
	fx := createTestServer(t)
	fx.signIn("admin-token", entity.RoleAdmin)

	fx.users.EXPECT().ListUsers(mock.Anything, mock.Anything).
		Return(nil, io.ErrClosedPipe)

	rec := fx.do(http.MethodGet, "/users", "admin-token", "")

	body := decode(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), body.Code)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), body.Message)
	assert.NotContains(t, rec.Body.String(), "pipe")
}

func TestServer_WhoAmI(t *testing.T) {
	fx := createTestServer(t)
	user := fx.signIn("owner-token", entity.RoleStoreOwner)

	rec := fx.do(http.MethodGet, "/test/whoami", "owner-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), user.ID.String())
}

func TestServer_UnknownRouteFailsClosed(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/nowhere", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
