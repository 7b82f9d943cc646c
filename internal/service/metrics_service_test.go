package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceExposesCollectors(t *testing.T) {
	svc := NewMetricsService()
	svc.ObserveHTTPRequest(http.MethodGet, "/api/students", http.StatusOK, 12*time.Millisecond)
	svc.ObserveStoreOperation("read", "students", 3*time.Millisecond, nil)
	svc.ObserveStoreOperation("write", "students", 5*time.Millisecond, errors.New("backend down"))

	recorder := httptest.NewRecorder()
	svc.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "store_operation_duration_seconds")
	assert.Contains(t, body, "store_operation_errors_total")
	assert.Contains(t, body, "goroutines_total")
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var svc *MetricsService
	svc.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	svc.ObserveStoreOperation("read", "students", time.Millisecond, nil)

	recorder := httptest.NewRecorder()
	svc.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
