package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives one observation per completed request.
type HTTPRecorder interface {
	RecordHTTPRequest(route, method string, statusCode int, duration time.Duration)
}

// pathsToSkip contains paths that are not worth recording.
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Metrics records request counts and latencies by route template.
// Unmatched routes are recorded under "unmatched" to keep label cardinality bounded.
func Metrics(recorder HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if recorder == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RecordHTTPRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
