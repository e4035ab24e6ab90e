package handler

import (
	"net/http"

	"storerating/internal/delivery/api/access"
	"storerating/internal/delivery/api/response"
	domainerrors "storerating/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for gate validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// WhoAmI echoes the identity the gate resolved for the request
func (h *TestHandler) WhoAmI(c echo.Context) error {
	caller, ok := access.CallerFrom(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no caller in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId": caller.ID(),
		"role":   caller.Role(),
		"route":  c.Path(),
		"status": "authenticated",
	})
}
