package server

import (
	"io"
	"time"

	"foliolink/internal/api/handlers"
	"foliolink/internal/api/middleware"
	"foliolink/internal/config"
	"foliolink/internal/db"
	"foliolink/internal/logging"
	"foliolink/internal/repository"
	"foliolink/internal/server/routes"
	"foliolink/internal/service"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new server instance
func NewServer(cfg *config.Config, database *db.Database) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable gin's own logging; the request logger middleware covers it
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	return &Server{
		router: gin.New(),
		cfg:    cfg,
		db:     database,
	}
}

// Init wires repositories, services, handlers and routes
func (s *Server) Init() error {
	logger := logging.GetGlobalLogger()

	routes.SetupGlobalMiddleware(s.router, s.cfg, logger)

	// Repositories
	rateLimitRepo := repository.NewRateLimitRepository(s.db.DB)
	messageRepo := repository.NewContactMessageRepository(s.db.DB)
	pageViewRepo := repository.NewPageViewRepository(s.db.DB)

	// Services
	captchaService := service.NewCaptchaService(service.CaptchaConfig{
		SecretKey: s.cfg.RecaptchaSecretKey,
		VerifyURL: s.cfg.RecaptchaVerifyURL,
		MinScore:  s.cfg.RecaptchaMinScore,
	})
	rateLimitService := service.NewRateLimitService(rateLimitRepo, service.RateLimitConfig{
		Window:      time.Duration(s.cfg.RateLimitWindowSeconds) * time.Second,
		MaxRequests: s.cfg.RateLimitMaxRequests,
	})
	mailService := service.NewMailService(service.MailConfig{
		APIKey:  s.cfg.MailAPIKey,
		BaseURL: s.cfg.MailBaseURL,
		From:    s.cfg.MailFrom,
	})
	contactService := service.NewContactService(captchaService, rateLimitService, mailService, messageRepo)
	analyticsService := service.NewAnalyticsService(pageViewRepo)

	h := &routes.Handlers{
		Contact:   handlers.NewContactHandler(contactService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Health:    handlers.NewHealthHandler(s.db),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	routes.Setup(s.router, h, m)
	return nil
}

// Start starts the server
func (s *Server) Start() error {
	logger := logging.GetGlobalLogger()
	logger.Info("Listening on port %s", s.cfg.Port)
	return s.router.Run(":" + s.cfg.Port)
}
