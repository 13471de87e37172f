package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopchat/internal/cache"
	"shopchat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.Nop()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := perform(r, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	w = perform(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestAuth(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour, "shopchat")
	token, err := tokens.Issue(9, "dana")
	require.NoError(t, err)

	handler := func(c *gin.Context) {
		id, ok := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok})
	}

	r := gin.New()
	r.GET("/optional", OptionalAuth(tokens), handler)
	r.GET("/required", RequireAuth(tokens), handler)

	tests := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{"optional without token", "/optional", "", http.StatusOK, `{"id":0,"ok":false}`},
		{"optional with token", "/optional", "Bearer " + token, http.StatusOK, `{"id":9,"ok":true}`},
		{"optional with bad token", "/optional", "Bearer nope", http.StatusUnauthorized, ""},
		{"required without token", "/required", "", http.StatusUnauthorized, ""},
		{"required with wrong scheme", "/required", "Basic " + token, http.StatusUnauthorized, ""},
		{"required with token", "/required", "Bearer " + token, http.StatusOK, `{"id":9,"ok":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := perform(r, http.MethodGet, tt.path, headers)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

type failingCounter struct{}

func (failingCounter) Incr(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("redis down")
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(cache.NewMemoryStore(), 2, time.Minute, zerolog.Nop()))
	r.GET("/limited", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 2; i++ {
		w := perform(r, http.MethodGet, "/limited", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
	w := perform(r, http.MethodGet, "/limited", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_CounterFailureLetsRequestThrough(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(failingCounter{}, 1, time.Minute, zerolog.Nop()))
	r.GET("/limited", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		w := perform(r, http.MethodGet, "/limited", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}
