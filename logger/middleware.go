package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header used to carry the request correlation ID
const HeaderRequestID = "X-Request-ID"

// RequestID reuses an inbound X-Request-ID or generates a new one, echoes it
// on the response and stores it in the request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Header(HeaderRequestID, reqID)
		c.Request = c.Request.WithContext(ContextWithRequestID(c.Request.Context(), reqID))
		c.Next()
	}
}

// AccessLog writes one structured line per handled request
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l := FromContext(c.Request.Context(), "http")
		status := c.Writer.Status()
		evt := l.Info()
		if status >= 500 {
			evt = l.Error()
		} else if status >= 400 {
			evt = l.Warn()
		}
		evt.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Str("remote_addr", c.ClientIP()).
			Msg("request handled")
	}
}
