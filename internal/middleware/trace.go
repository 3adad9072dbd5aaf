package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextTraceID = "trace_id"

// Trace assigns a request-scoped trace ID and echoes it back in the
// X-Trace-ID response header. An inbound X-Trace-ID is reused so callers
// can correlate retries.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" || len(traceID) > 36 {
			traceID = uuid.NewString()
		}
		c.Set(ContextTraceID, traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}

// GetTraceID gets the current trace ID from context
func GetTraceID(c *gin.Context) string {
	if id, exists := c.Get(ContextTraceID); exists {
		return id.(string)
	}
	return ""
}
