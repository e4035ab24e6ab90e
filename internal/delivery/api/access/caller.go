package access

import (
	"storerating/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const callerKey = "access.caller"

// Caller is the identity resolved from a request token.
type Caller struct {
	User *entity.User
}

func (c Caller) ID() uuid.UUID {
	return c.User.ID
}

func (c Caller) Role() entity.Role {
	return c.User.Role
}

// SetCaller stores the identity on the echo context.
func SetCaller(c echo.Context, caller Caller) {
	c.Set(callerKey, caller)
}

// CallerFrom returns the request identity. There is no default identity: anonymous
// requests get false.
func CallerFrom(c echo.Context) (Caller, bool) {
	caller, ok := c.Get(callerKey).(Caller)
	if !ok || caller.User == nil {
		return Caller{}, false
	}

	return caller, true
}

// UserFrom returns the identified user, or nil for anonymous requests.
func UserFrom(c echo.Context) *entity.User {
	caller, ok := CallerFrom(c)
	if !ok {
		return nil
	}

	return caller.User
}
