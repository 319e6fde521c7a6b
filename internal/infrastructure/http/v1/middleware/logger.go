package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"imaut/pkg/logger"
)

// Logger stores a request-scoped logger in the request context and logs
// each request with timing and status once it finishes.
// Must run after Trace.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(logger.WithLogger(ctx, log.WithContext(ctx)))

		c.Next()

		logger.FromContext(c.Request.Context()).Infow("http request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		)
	}
}

// Resource tags the request logger with the collection being served.
func Resource(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(logger.WithLogger(ctx, logger.FromContext(ctx).WithResource(name)))
		c.Next()
	}
}
