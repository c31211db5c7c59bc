package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"foliolink/internal/api/constants"
	"foliolink/internal/api/dto/common"
	"foliolink/internal/api/dto/v1/contact"
	"foliolink/internal/service"
	"foliolink/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler exposes the contact pipeline over HTTP
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit runs a contact form submission through the trust pipeline and maps
// each rejection onto its own status and machine-readable code.
func (h *ContactHandler) Submit(c *gin.Context) {
	// Contact data was validated and stored by the validation middleware
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}

	req, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid contact data format")
		return
	}

	meta := service.SubmissionMeta{
		IPAddress: utils.GetRealIP(c),
		UserAgent: c.Request.UserAgent(),
	}

	ack, err := h.contactService.Submit(c.Request.Context(), req, meta)
	if err != nil {
		h.handleSubmitError(c, err)
		return
	}

	utils.HandleSuccess(c, ack)
}

func (h *ContactHandler) handleSubmitError(c *gin.Context, err error) {
	var verificationErr *service.VerificationError
	var rateLimitedErr *service.RateLimitedError
	var configErr *service.ConfigError

	switch {
	case errors.As(err, &verificationErr):
		utils.HandleAPIError(c, err, http.StatusForbidden, common.ErrCodeVerificationFailed,
			"Security verification failed. Please try again.")

	case errors.As(err, &rateLimitedErr):
		c.Header("Retry-After", strconv.Itoa(rateLimitedErr.RemainingSeconds))
		c.JSON(http.StatusTooManyRequests, common.NewErrorResponse(
			common.ErrCodeRateLimited,
			"Rate limit exceeded",
			contact.RateLimitedResponse{
				Message:       fmt.Sprintf("Please wait %d seconds before sending another message.", rateLimitedErr.RemainingSeconds),
				RemainingTime: rateLimitedErr.RemainingSeconds,
			},
		))

	case errors.As(err, &configErr):
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer,
			configErr.Reason)

	default:
		// Relay rejections and anything unexpected
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeSendFailed,
			"Failed to send message")
	}
}
