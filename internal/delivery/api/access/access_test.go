package access

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy(t *testing.T) {
	t.Parallel()

	adminOnly := Roles(entity.RoleAdmin)

	assert.True(t, Public.IsPublic())
	assert.True(t, Optional.AllowsAnonymous())
	assert.False(t, Authenticated.AllowsAnonymous())
	assert.False(t, adminOnly.AllowsAnonymous())

	assert.True(t, Authenticated.Permits(entity.RoleUser))
	assert.True(t, adminOnly.Permits(entity.RoleAdmin))
	assert.False(t, adminOnly.Permits(entity.RoleStoreOwner))

	assert.Equal(t, "roles(admin)", adminOnly.String())
}

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Set(http.MethodGet, "/stores", Optional)
	table.Set(http.MethodPost, "/stores", Roles(entity.RoleAdmin))

	assert.Equal(t, Optional, table.Lookup(http.MethodGet, "/stores"))
	assert.Equal(t, Optional, table.Lookup(http.MethodHead, "/stores"))
	assert.Equal(t, "roles(admin)", table.Lookup(http.MethodPost, "/stores").String())
	assert.Equal(t, Authenticated, table.Lookup(http.MethodDelete, "/stores"), "unknown routes fail closed")
	assert.Equal(t, Authenticated, table.Lookup(http.MethodGet, ""))
	assert.Equal(t, 2, table.Len())
}

func TestCallerFrom(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := CallerFrom(c)
	assert.False(t, ok)
	assert.Nil(t, UserFrom(c))

	user := &entity.User{ID: uuid.New(), Role: entity.RoleStoreOwner}
	SetCaller(c, Caller{User: user})

	caller, ok := CallerFrom(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, caller.ID())
	assert.Equal(t, entity.RoleStoreOwner, caller.Role())
	assert.Same(t, user, UserFrom(c))
}
