package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Label        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is one recorded LLM call, read back for reporting.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventQuery filters event listings.
type EventQuery struct {
	Label      string    // exact label match ("" = all)
	OnlyFailed bool      // restrict to failed calls
	From       time.Time // timestamp >= From (zero = unbounded)
	Limit      int       // max results (0 = unlimited)
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns events matching the query, newest first.
	ListLLMRequests(ctx context.Context, q EventQuery) ([]LLMRequestEvent, error)
}
