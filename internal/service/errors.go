package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for service layer
var (
	ErrInvalidPeriod = errors.New("invalid aggregation period")
)

// VerificationError rejects an untrusted submission. Expected user-facing
// rejection, mapped to 403 by the handler.
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("security verification failed: %s", e.Reason)
}

// RateLimitedError rejects an over-quota submission. Mapped to 429 with a
// Retry-After hint.
type RateLimitedError struct {
	RemainingSeconds int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry in %ds", e.RemainingSeconds)
}

// ConfigError signals missing secrets or required settings. Fatal for the
// request, never retried, mapped to 500.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// RelayError carries a mail provider rejection, including the provider's
// error payload. Mapped to 500.
type RelayError struct {
	StatusCode int
	Payload    string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("mail relay returned status %d: %s", e.StatusCode, e.Payload)
}
