package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// requestIDKey is the key used to store the request ID in the Gin and request contexts.
const requestIDKey = contextKey("requestID")

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// GetRequestIDFromContext retrieves the request ID from the Gin context.
// It returns the request ID and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestIDVal, exists := c.Get(string(requestIDKey))
	if !exists {
		// check in the request context as well
		return GetRequestIDFromCtx(c.Request.Context())
	}

	requestID, ok := requestIDVal.(string)
	return requestID, ok
}

// GetRequestIDFromCtx retrieves the request ID from a plain context.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}
