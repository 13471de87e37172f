package middleware

import (
	"net/http"
	"strings"

	"shopchat/internal/model"
	"shopchat/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	usernameKey = "username"
)

// TokenValidator verifies session tokens
type TokenValidator interface {
	Validate(token string) (*service.SessionClaims, error)
}

// OptionalAuth attaches the user of a valid bearer token to the context.
// Requests without a token pass through; a bad token is rejected.
func OptionalAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		if !authenticate(c, tokens, header) {
			return
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Error("Authorization header required"))
			return
		}
		if !authenticate(c, tokens, header) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens TokenValidator, header string) bool {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.Error("Invalid authorization header format"))
		return false
	}

	claims, err := tokens.Validate(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.Error("Invalid or expired token"))
		return false
	}

	c.Set(userIDKey, claims.UserID)
	c.Set(usernameKey, claims.Username)
	return true
}

// GetUserID returns the authenticated user id, if any
func GetUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
