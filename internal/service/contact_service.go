package service

import (
	"context"

	"foliolink/internal/api/dto/v1/contact"
	"foliolink/internal/logging"
	"foliolink/internal/repository"
)

// SubmissionMeta carries request information gathered by the handler.
type SubmissionMeta struct {
	IPAddress string
	UserAgent string
}

// ContactService sequences the contact pipeline:
// verification, then rate limiting, then dispatch.
//
// Verification runs first because it is the cheapest check to fail fast on,
// and bot traffic rejected there must not consume a legitimate sender's
// rate-limit quota.
type ContactService struct {
	captcha  *CaptchaService
	limiter  *RateLimitService
	mail     *MailService
	messages repository.ContactMessageRepository
	logger   *logging.Logger
}

// NewContactService creates the pipeline orchestrator
func NewContactService(captcha *CaptchaService, limiter *RateLimitService, mail *MailService, messages repository.ContactMessageRepository) *ContactService {
	return &ContactService{
		captcha:  captcha,
		limiter:  limiter,
		mail:     mail,
		messages: messages,
		logger:   logging.GetGlobalLogger(),
	}
}

// Submit runs one submission through the pipeline, short-circuiting on the
// first failing gate. A retried identical submission is a brand-new attempt.
func (s *ContactService) Submit(ctx context.Context, req *contact.ContactRequest, meta SubmissionMeta) (map[string]interface{}, error) {
	result := s.captcha.Verify(ctx, req.RecaptchaToken)
	if !result.Success {
		s.logger.Info("contact submission from %s rejected: %s", meta.IPAddress, result.Err)
		return nil, &VerificationError{Reason: result.Err}
	}

	decision := s.limiter.CheckAndRecord(ctx, meta.IPAddress)
	if !decision.Allowed {
		s.logger.Info("contact submission from %s rate limited, %ds remaining", meta.IPAddress, decision.RemainingSeconds)
		return nil, &RateLimitedError{RemainingSeconds: decision.RemainingSeconds}
	}

	ack, err := s.mail.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	// Audit trail is best effort and never fails a delivered submission.
	if s.messages != nil {
		record := repository.ContactMessageRecord{
			SenderName:     req.SenderName,
			SenderEmail:    req.SenderEmail,
			Message:        req.Message,
			RecipientEmail: req.RecipientEmail,
			RecipientName:  req.RecipientName,
			IPAddress:      meta.IPAddress,
			UserAgent:      meta.UserAgent,
		}
		if _, err := s.messages.Create(ctx, record); err != nil {
			s.logger.Warn("failed to record contact message: %v", err)
		}
	}

	return ack, nil
}
