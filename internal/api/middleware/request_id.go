package middleware

import (
	"foliolink/internal/api/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID attaches an X-Request-ID to every request, keeping an inbound
// one when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
