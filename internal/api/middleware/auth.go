// Package middleware provides HTTP middleware for the hydrasrv API:
// API key authentication and request logging.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrasrv/internal/api/models"
)

// APIKeyHeader carries the shared secret.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey enforces a shared-secret API key sent as `X-API-Key: <key>`.
// Requests whose full path is listed in public pass without a key.
// An empty expected key disables the check.
func RequireAPIKey(expected string, public ...string) gin.HandlerFunc {
	want := []byte(expected)
	return func(c *gin.Context) {
		if expected == "" || slices.Contains(public, c.FullPath()) {
			c.Next()
			return
		}
		got := []byte(c.GetHeader(APIKeyHeader))
		if subtle.ConstantTimeCompare(got, want) == 1 {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
}
