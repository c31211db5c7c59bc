package utils

import (
	"foliolink/internal/api/dto/common"
	"foliolink/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError maps an error onto the standard response envelope.
// User-visible messages stay generic; the internal log carries the cause.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	// Don't expose error details in production
	var details interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		details = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, details))
}
