package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RatingSubmitted(t *testing.T) {
	m := New()

	m.RatingSubmitted(true)
	m.RatingSubmitted(false)
	m.RatingSubmitted(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ratingsSubmitted.WithLabelValues("created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ratingsSubmitted.WithLabelValues("updated")))
}

func TestMetrics_RequestStarted(t *testing.T) {
	m := New()

	done := m.RequestStarted("get")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpInFlight))

	done("/stores/:id", http.StatusOK)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/stores/:id", "200")))

	m.RequestStarted("POST")("", http.StatusNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "unmatched", "404")))
}

func TestMetrics_ObserveDBPool(t *testing.T) {
	m := New()

	m.ObserveDBPool(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3, WaitCount: 7})

	assert.Equal(t, 5.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("open")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("in_use")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("idle")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbWaitCount))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RatingSubmitted(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `storerating_ratings_submitted_total{outcome="created"} 1`))
}
