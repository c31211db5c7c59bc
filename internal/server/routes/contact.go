package routes

import (
	"foliolink/internal/api/handlers"
	"foliolink/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	public := router.Group("/contact")
	{
		// Public endpoint. The token bucket absorbs floods; the persistent
		// per-IP sliding window inside the pipeline is the limiter of record.
		public.POST("/submit",
			middleware.BurstLimit(middleware.BurstLimitConfig{
				RPS:   5,
				Burst: 10,
			}),
			m.Validation.ValidateContactRequest(),
			contact.Submit,
		)
	}
}
