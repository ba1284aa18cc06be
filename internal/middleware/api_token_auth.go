package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// APIKey is a pre-shared service key. Only its bcrypt hash is configured.
type APIKey struct {
	Subject string // Recorded as the acting user
	Hash    []byte
}

// APIKeyAuth authenticates requests carrying an x-api-key header against the
// configured bcrypt hashes. Requests without a key, or with an unknown one,
// continue to AuthMiddleware.
func APIKeyAuth(keys []APIKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(keys) == 0 || isPublicRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" {
			c.Next()
			return
		}

		for _, key := range keys {
			if bcrypt.CompareHashAndPassword(key.Hash, []byte(apiKey)) == nil {
				setAuthenticated(c, key.Subject, "api_key")
				enrichLogger(c, GetLoggerFromCtx(c.Request.Context()), key.Subject)
				c.Next()
				return
			}
		}

		GetLoggerFromCtx(c.Request.Context()).Warn("Unknown API key presented")
		c.Next()
	}
}

// isPublicRoute checks if the given path is a public route that doesn't require authentication
func isPublicRoute(path string) bool {
	publicRoutes := []string{
		"/health",
		"/metrics",
	}

	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}

	return false
}
