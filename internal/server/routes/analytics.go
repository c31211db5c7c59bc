package routes

import (
	"foliolink/internal/api/handlers"
	"foliolink/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAnalyticsRoutes configures page-view analytics routes
func SetupAnalyticsRoutes(router *gin.RouterGroup, analytics *handlers.AnalyticsHandler, m *Middleware) {
	group := router.Group("/analytics")
	{
		group.POST("/track",
			middleware.BurstLimit(middleware.BurstLimitConfig{
				RPS:   50,
				Burst: 100,
			}),
			m.Validation.ValidateTrackRequest(),
			analytics.Track,
		)
		group.GET("/:username", analytics.Stats)
	}
}
