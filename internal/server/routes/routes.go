package routes

import (
	"foliolink/internal/api/middleware"
	"foliolink/internal/config"
	"foliolink/internal/logging"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	// Health check endpoint - outside the versioned API
	router.GET("/health", h.Health.Check)

	v1 := router.Group("/api/v1")

	SetupContactRoutes(v1, h.Contact, m)
	SetupAnalyticsRoutes(v1, h.Analytics, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	if cfg.OTLPEndpoint != "" {
		router.Use(otelgin.Middleware("foliolink"))
	}
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.Environment, cfg.AllowedOrigins))
}
