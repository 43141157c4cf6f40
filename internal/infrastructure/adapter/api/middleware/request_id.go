package middleware

import (
	applogger "github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID propagates the caller's correlation id or mints one, and exposes it to the
// request context so repositories and use cases log it
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(applogger.WithRequestID(c.Request.Context(), rid))
		c.Next()
	}
}

// GetRequestID returns the correlation id of the request
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
