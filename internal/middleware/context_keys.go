package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of every value this package stores in a context.
// Using a custom type prevents collisions.
type contextKey string

const (
	// userIDKey holds the authenticated subject.
	userIDKey = contextKey("userID")
	// authMethodKey records which middleware authenticated the request.
	authMethodKey = contextKey("authMethod")
	// loggerCtxKey holds the request-scoped *slog.Logger.
	loggerCtxKey = contextKey("logger")
)

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// setAuthenticated stores the subject in both the Gin and the request context.
func setAuthenticated(c *gin.Context, userID, method string) {
	c.Set(string(userIDKey), userID)
	c.Set(string(authMethodKey), method)
	c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
}
