package handlers

import (
	"errors"
	"net/http"

	"foliolink/internal/api/constants"
	"foliolink/internal/api/dto/common"
	"foliolink/internal/api/dto/v1/analytics"
	"foliolink/internal/api/validation"
	"foliolink/internal/service"
	"foliolink/internal/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler exposes page-view tracking and aggregation
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Track records a single portfolio page view
func (h *AnalyticsHandler) Track(c *gin.Context) {
	trackData, exists := c.Get(constants.ContextKeyTrack)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Track data not found in context")
		return
	}

	req, ok := trackData.(*analytics.TrackRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid track data format")
		return
	}

	if err := h.analyticsService.Track(c.Request.Context(), req.Username, req.Path, req.Referrer); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to record page view")
		return
	}

	utils.HandleNoContent(c)
}

// Stats returns view counts for a portfolio bucketed by day, week or month
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	username := c.Param("username")
	if !validation.IsValidUsername(username) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, "Invalid username", nil))
		return
	}

	period := c.DefaultQuery("period", service.PeriodDay)

	stats, err := h.analyticsService.Aggregate(c.Request.Context(), username, period)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, "Period must be day, week or month", nil))
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to aggregate page views")
		return
	}

	utils.HandleSuccess(c, stats)
}
