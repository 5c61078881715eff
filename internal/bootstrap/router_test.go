package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-showcase/portfolio-api/internal/api/http/middleware"
	contactdomain "github.com/portfolio-showcase/portfolio-api/internal/contact/domain"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/service"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/stack"
)

type staticDocs struct{}

func (staticDocs) FetchCollection(ctx context.Context, name string) ([]domain.RawRecord, error) {
	return []domain.RawRecord{{ID: name + "-1", Fields: map[string]interface{}{"title": "One"}}}, nil
}

func (staticDocs) FetchOne(ctx context.Context, collection, id string) (domain.RawRecord, error) {
	return domain.RawRecord{}, domain.ErrNotFound
}

type countingRelay struct{ calls int }

func (r *countingRelay) Submit(ctx context.Context, s contactdomain.Submission) (contactdomain.SendResult, error) {
	r.calls++
	return contactdomain.SendResult{ID: "email-1"}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *countingRelay) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	items, err := stack.Default()
	require.NoError(t, err)

	relay := &countingRelay{}
	r := BuildRouter(RouterDeps{
		ServiceName:          "portfolio-api",
		Version:              "test",
		AllowedOrigins:       []string{"https://portfolio.example.dev"},
		Loader:               service.NewLoader(staticDocs{}, nil, nil, service.LoaderOptions{}),
		Stack:                items,
		Relay:                relay,
		ContactRatePerMinute: 1,
		ContactBurst:         1,
	})
	return r, relay
}

func TestBuildRouter_Routes(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/healthz", "/api/portfolio", "/api/portfolio/state", "/api/portfolio/stats", "/api/stack"} {
		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader), path)
	}
}

func TestBuildRouter_CORS(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodOptions, "/api/send-email", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://portfolio.example.dev")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(rr, req)

	assert.Equal(t, "https://portfolio.example.dev", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = httptest.NewRecorder()
	req, err = http.NewRequest(http.MethodGet, "/api/stack", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestBuildRouter_ContactRateLimited(t *testing.T) {
	r, relay := newTestRouter(t)

	send := func() int {
		rr := httptest.NewRecorder()
		body := `{"name":"Ada","email":"ada@example.com","message":"Hello"}`
		req, err := http.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.0.2.10:4000"
		r.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
	assert.Equal(t, 1, relay.calls)
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	cfg := corsConfig([]string{"https://a.example"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example"}, cfg.AllowOrigins)
}
