package middleware

import (
	"storerating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle renders handler errors itself so the recorded status is the one sent.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.RequestStarted(c.Request().Method)

		if err := next(c); err != nil {
			c.Error(err)
		}

		done(c.Path(), c.Response().Status)

		return nil
	}
}
