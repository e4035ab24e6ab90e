package requestctx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBind(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Empty(t, RequestID(c))

	Bind(c, "req-1", logger)

	assert.Equal(t, "req-1", RequestID(c))
	assert.Equal(t, "req-1", RequestIDFrom(c.Request().Context()))
	assert.Same(t, logger, Logger(c.Request().Context(), nil))
}

func TestLogger_Fallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Empty(t, RequestIDFrom(context.Background()))
}
