package llm

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// returned a 5xx. Timeouts at the transport layer map here as well.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrPermanent indicates a non-retryable provider failure: bad request,
// auth error, unknown model. Retrying would fail the same way.
type ErrPermanent struct {
	Err error
}

func (e *ErrPermanent) Error() string {
	return fmt.Sprintf("permanent LLM provider error: %v", e.Err)
}

func (e *ErrPermanent) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider call succeeded but returned no
// text content.
type ErrEmptyResponse struct{}

func (e *ErrEmptyResponse) Error() string {
	return "empty LLM response"
}
