package middleware

import (
	"net/http"

	"foliolink/internal/api/constants"
	"foliolink/internal/api/dto/common"
	"foliolink/internal/api/dto/v1/analytics"
	"foliolink/internal/api/dto/v1/contact"
	"foliolink/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// ValidateContactRequest validates a contact form submission and stores it
// in the context for the handler
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(
				common.ErrCodeValidation,
				"Invalid request body",
				validation.FormatValidationError(err),
			))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

// ValidateTrackRequest validates a page view tracking request
func (m *ValidationMiddleware) ValidateTrackRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analytics.TrackRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(
				common.ErrCodeValidation,
				"Invalid request body",
				validation.FormatValidationError(err),
			))
			c.Abort()
			return
		}

		if !validation.IsValidUsername(req.Username) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(
				common.ErrCodeValidation,
				"Invalid username",
				nil,
			))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTrack, &req)
		c.Next()
	}
}
