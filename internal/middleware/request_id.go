package middleware

import (
	"time"

	"pannel_pintura/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags each request with an id (taken from X-Request-ID when sent)
// and logs its start and completion.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()[:8]
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)

		log := logger.Get(ctx)
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Msg("Request started")

		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		if status >= 400 {
			ev = log.Warn()
		}
		if status >= 500 {
			ev = log.Error()
		}
		ev.Int("status", status).
			Int("size", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Msg("Request completed")
	}
}
