package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type traceIDKey struct{}

// TraceIDMiddleware tags every request with a trace id: the caller's
// X-Trace-ID when one is presented, a fresh uuid otherwise. The id is
// stored on the gin context for the response envelope and on the
// request context so service-level log lines can carry it too.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), traceIDKey{}, traceID))
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}

// TraceIDFrom extracts the trace id carried by ctx, or "" when the
// request never passed through TraceIDMiddleware.
func TraceIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDKey{}).(string); ok {
		return v
	}
	return ""
}
