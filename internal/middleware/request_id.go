package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the request trace ID. Callers may supply their
	// own so an aggregation run can be correlated across services; requests
	// without one get a generated UUID.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the error responders read the trace ID from.
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace ID and echoes it back in the
// response, so a client reporting a wrong number can quote the exact run.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID reads the trace ID set by RequestID. Empty when the middleware
// did not run.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
