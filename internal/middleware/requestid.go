package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request correlation id
const RequestIDHeader = "X-Request-ID"

// RequestID adds a unique request ID to each request, generating one when
// the caller did not supply it
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			c.Request.Header.Set(RequestIDHeader, requestID)
		}

		// Echo the request ID back to the caller
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Set("requestID", requestID)

		c.Next()
	}
}
