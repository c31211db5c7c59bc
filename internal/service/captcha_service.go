package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"foliolink/internal/logging"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// CaptchaConfig holds the verification provider settings.
// The secret is injected here instead of being read from the environment so
// the service can be constructed deterministically in tests.
type CaptchaConfig struct {
	SecretKey string
	VerifyURL string
	MinScore  float64
}

// CaptchaService validates client-supplied bot-check tokens.
//
// Every branch fails closed except an unreachable provider: there the
// submission is allowed through with a neutral score and the rate limiter
// remains the only defense.
type CaptchaService struct {
	config CaptchaConfig
	client *http.Client
	logger *logging.Logger
}

// VerificationResult is the trust decision for one token.
type VerificationResult struct {
	Success bool
	Score   float64
	Err     string
}

// NewCaptchaService creates a new captcha verification service
func NewCaptchaService(config CaptchaConfig) *CaptchaService {
	if config.VerifyURL == "" {
		config.VerifyURL = defaultVerifyURL
	}
	if config.MinScore == 0 {
		config.MinScore = 0.5
	}
	return &CaptchaService{
		config: config,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logging.GetGlobalLogger(),
	}
}

// captchaResponse represents the response from the verification provider
type captchaResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify checks a token against the verification provider. A single attempt,
// no retries.
func (s *CaptchaService) Verify(ctx context.Context, token string) VerificationResult {
	if s.config.SecretKey == "" {
		s.logger.Warn("captcha secret key not configured, rejecting submission")
		return VerificationResult{Success: false, Err: "not configured"}
	}

	if token == "" {
		s.logger.Info("captcha token missing, rejecting submission")
		return VerificationResult{Success: false, Err: "token required"}
	}

	data := url.Values{}
	data.Set("secret", s.config.SecretKey)
	data.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.VerifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		s.logger.Error("failed to build captcha request: %v", err)
		return VerificationResult{Success: false, Err: "verification failed"}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		// The provider is down, not the submitter's fault. Let the rate
		// limiter carry the remaining defense.
		s.logger.Warn("captcha provider unreachable, allowing submission: %v", err)
		return VerificationResult{Success: true, Score: 0.5, Err: "service unavailable"}
	}
	defer resp.Body.Close()

	var result captchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.logger.Warn("failed to parse captcha response, rejecting submission: %v", err)
		return VerificationResult{Success: false, Err: "verification failed"}
	}

	if !result.Success {
		s.logger.Info("captcha verification failed: %v", result.ErrorCodes)
		return VerificationResult{Success: false, Score: result.Score, Err: "verification failed"}
	}

	if result.Score < s.config.MinScore {
		s.logger.Info("captcha score too low: %.2f < %.2f", result.Score, s.config.MinScore)
		return VerificationResult{Success: false, Score: result.Score, Err: "suspicious activity"}
	}

	return VerificationResult{Success: true, Score: result.Score}
}
