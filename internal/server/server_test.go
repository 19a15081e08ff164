package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alfagnish/users-gateway/internal/config"
	"github.com/alfagnish/users-gateway/internal/metrics"
	"github.com/alfagnish/users-gateway/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupServer(m *metrics.Metrics) http.Handler {
	cfg := &config.Config{AllowedOrigins: []string{"*"}}
	return New(cfg, users.Default(), zap.NewNop(), m)
}

func TestEndpoints(t *testing.T) {
	h := setupServer(nil)

	cases := map[string]struct {
		method string
		path   string
		want   string
	}{
		"all":   {http.MethodGet, "/", `[{"id":1,"name":"sara","age":26},{"id":2,"name":"sam","age":25},{"id":3,"name":"santa","age":23}]`},
		"ages":  {http.MethodGet, "/age", `[{"age":26},{"age":25},{"age":23}]`},
		"names": {http.MethodPost, "/names", `[{"name":"sara"},{"name":"sam"},{"name":"santa"}]`},
		"ids":   {http.MethodGet, "/id_num", `[{"id":1},{"id":2},{"id":3}]`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.want, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	h := setupServer(nil)

	req := httptest.NewRequest(http.MethodOptions, "/names", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestNotFoundIsJSON(t *testing.T) {
	h := setupServer(nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"not found: /nope"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := setupServer(metrics.New())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/age", nil))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `http_requests_total{code="200",method="GET",route="/age"} 1`))
}
