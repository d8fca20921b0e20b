package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/runs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	router := newTestRouter()
	series := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/runs/{id}", "204")
	before := counterValue(t, series)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/"+id, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.Equal(t, before+2, counterValue(t, series))
}

func TestMiddleware_UnmatchedPathsShareOneLabel(t *testing.T) {
	router := newTestRouter()
	series := HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "404")
	before := counterValue(t, series)

	for _, path := range []string{"/wp-login.php", "/.env", "/admin/config.php"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, before+3, counterValue(t, series))
	assert.False(t, HTTPRequestsTotal.DeleteLabelValues(http.MethodGet, "/wp-login.php", "404"),
		"raw request paths never become label values")
}
