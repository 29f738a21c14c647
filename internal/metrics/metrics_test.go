package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/metrics"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/apartments/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/apartments/"+id, nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `estate_http_requests_total{method="GET",route="/apartments/{id}",status="404"} 2`)
	assert.Contains(t, body, "estate_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "estate_http_requests_in_flight 0")
}

func TestMarkedOverdue(t *testing.T) {
	m := metrics.New()
	m.MarkedOverdue(3)
	m.MarkedOverdue(0)

	assert.Contains(t, scrape(t, m), "estate_invoices_marked_overdue_total 3")
}
