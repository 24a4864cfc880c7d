package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout bounds the request context by timeout.
// If the deadline passes and no handler has written a response, it replies 503.
// A non-positive timeout disables the middleware.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			GetLoggerFromCtx(ctx).Warn("Request timed out", "timeout", timeout.String())
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Request timed out"})
		}
	}
}
