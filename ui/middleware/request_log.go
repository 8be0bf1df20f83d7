// Package middleware holds gin middleware shared by the dashboard server.
package middleware

import (
	"time"

	"launchdash/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured line per request.
// Client errors log at warn, server errors at error, everything else at debug.
func RequestLogger(logger *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		l := logger.With(
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
		switch {
		case status >= 500:
			l.Error("[HTTP] %s", c.Errors.String())
		case status >= 400:
			l.Warn("[HTTP] request rejected")
		default:
			l.Debug("[HTTP] request served")
		}
	}
}
