package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopchat/internal/cache"
	"shopchat/internal/config"
	"shopchat/internal/intent"
	"shopchat/internal/repository"
	"shopchat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, rateLimit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewRepository(repository.DriverSQLite, ":memory:", 1, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Migrate(context.Background()))

	cfg := &config.Config{
		Server: config.ServerConfig{
			AllowedOrigins: []string{"http://shop.test"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		RateLimit: config.RateLimitConfig{Enabled: rateLimit > 0, Requests: rateLimit, Window: time.Minute},
	}

	log := zerolog.Nop()
	store := cache.NewMemoryStore()
	tokens := service.NewTokenService("router-secret", time.Hour, "shopchat-test")

	return NewRouter(Deps{
		Config:   cfg,
		Build:    BuildInfo{Version: "1.2.3", BuildTime: "now", GitCommit: "abc"},
		Log:      log,
		Auth:     service.NewAuthService(repo, tokens, log),
		Tokens:   tokens,
		Products: service.NewProductService(repo, store, time.Minute, log),
		Chat:     service.NewChatService(intent.NewParser(nil, log), repo, log),
		History:  service.NewHistoryService(repo),
		Counter:  store,
	})
}

func TestRouter_HealthAndVersion(t *testing.T) {
	r := newTestRouter(t, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"shopchat","version":"1.2.3","build_time":"now","git_commit":"abc"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"1.2.3","build_time":"now","git_commit":"abc"}`, w.Body.String())
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t, 0)

	want := map[string]bool{
		"GET /health":        true,
		"GET /version":       true,
		"POST /register":     true,
		"POST /login":        true,
		"GET /products":      true,
		"GET /products/:id":  true,
		"POST /chat":         true,
		"POST /chat/history": true,
		"GET /chat/history":  true,
	}
	for _, route := range r.Routes() {
		delete(want, route.Method+" "+route.Path)
	}
	assert.Empty(t, want)
}

func TestRouter_CORS(t *testing.T) {
	r := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://shop.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://shop.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_RateLimit(t *testing.T) {
	r := newTestRouter(t, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_NoRoute(t *testing.T) {
	r := newTestRouter(t, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Endpoint not found."}`, w.Body.String())
}
