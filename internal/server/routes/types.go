package routes

import (
	"foliolink/internal/api/handlers"
	"foliolink/internal/api/middleware"
)

// Handlers holds all handler instances used by the router
type Handlers struct {
	Contact   *handlers.ContactHandler
	Analytics *handlers.AnalyticsHandler
	Health    *handlers.HealthHandler
}

// Middleware holds all configurable middleware instances
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
