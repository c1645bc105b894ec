package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fwr/quizgen/internal/artifact"
	"github.com/fwr/quizgen/internal/llm"
)

// CallSpec describes one JSON-producing model call.
type CallSpec struct {
	Model       string
	System      string
	User        string
	Temperature float32
	Label       string
	// Attempts is how many times the call is retried when the response
	// contains no recoverable JSON. Transient API errors are retried
	// inside the provider already.
	Attempts int
}

// Caller executes model calls and recovers a JSON object from each
// response. Every raw response is persisted as an artifact before
// parsing, so failures stay inspectable.
type Caller struct {
	provider  llm.Provider
	artifacts *artifact.Store
	log       *zap.SugaredLogger
}

// NewCaller creates a Caller. artifacts may be nil to disable
// persistence; log may be nil for silence.
func NewCaller(provider llm.Provider, artifacts *artifact.Store, log *zap.SugaredLogger) *Caller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Caller{provider: provider, artifacts: artifacts, log: log}
}

// CallJSON runs the call and returns the recovered JSON object.
// It retries up to spec.Attempts times when a response parses to
// nothing, and returns the last error otherwise.
func (c *Caller) CallJSON(ctx context.Context, spec CallSpec) (json.RawMessage, error) {
	attempts := spec.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		label := fmt.Sprintf("%s:attempt%d", spec.Label, attempt)
		callCtx := llm.WithLabel(ctx, label)

		resp, err := c.provider.Generate(callCtx, llm.Request{
			Model:       spec.Model,
			System:      spec.System,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: spec.User}},
			JSONMode:    true,
			Temperature: spec.Temperature,
		})
		if err != nil {
			lastErr = err
			c.log.Warnw("model call failed", "label", label, "error", err)
			continue
		}

		c.saveRaw(label, resp.Text)

		raw, ok := ExtractJSON(resp.Text)
		if !ok {
			lastErr = ErrNoJSON
			c.log.Warnw("no JSON recovered from response", "label", label, "chars", len(resp.Text))
			continue
		}
		return raw, nil
	}
	return nil, fmt.Errorf("call %s exhausted %d attempts: %w", spec.Label, attempts, lastErr)
}

func (c *Caller) saveRaw(label, text string) {
	if c.artifacts == nil {
		return
	}
	if _, err := c.artifacts.SaveText(label, text); err != nil {
		c.log.Warnw("failed to save raw artifact", "label", label, "error", err)
	}
}
