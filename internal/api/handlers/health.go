package handlers

import (
	"context"
	"net/http"
	"time"

	"foliolink/internal/api/dto/common"
	"foliolink/internal/db"
	"foliolink/internal/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service and database liveness
type HealthHandler struct {
	db *db.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(database *db.Database) *HealthHandler {
	return &HealthHandler{db: database}
}

// Check pings the database with a cheap query
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if _, err := h.db.DB.RateLimitEntry.Query().Limit(1).All(ctx); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Database connection error")
		return
	}

	utils.HandleMessage(c, "Health check OK")
}
