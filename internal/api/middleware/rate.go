package middleware

import (
	"net/http"
	"strconv"

	"foliolink/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// BurstLimitConfig defines configuration for the in-process token bucket
// that shields a route from request floods. It sits in front of the
// persistent per-IP sliding window, which stays the limiter of record.
type BurstLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// BurstLimit creates a token-bucket limiting middleware with the given
// configuration
func BurstLimit(config BurstLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests,
				"Too many requests. Please try again later.",
				nil,
			))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
