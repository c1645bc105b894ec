package llm

import (
	"context"
	"time"
)

// TimeoutProvider bounds each Generate call with a deadline. A timed-out
// call surfaces as a context error and consumes a retry slot.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call timeout. A non-positive
// timeout disables the wrapper.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(callCtx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
