package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Critic reviews every generated pool and repairs the ones that failed
// validation. The first attempt uses the full QA-reviewer prompt; later
// attempts fall back to a simpler structure-first prompt.
type Critic struct {
	caller *Caller
	cfg    Config
	log    *zap.SugaredLogger
}

func NewCritic(caller *Caller, cfg Config, log *zap.SugaredLogger) *Critic {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Critic{caller: caller, cfg: cfg, log: log}
}

// Review sends the pool through the critic model until the result
// validates or attempts run out. Pools that failed raw validation
// arrive with their violations listed; pools that passed are still
// reviewed for accuracy. Only a critic-validated pool is ever
// returned; the input never proceeds on its own.
func (c *Critic) Review(ctx context.Context, unit Unit, raw json.RawMessage, errs []ValidationError) (Pool, error) {
	userPrompt := CriticUserPrompt(string(raw), errs)

	attempts := c.cfg.CriticAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Pool{}, err
		}

		system := CriticSystemPrompt(c.cfg.Limits)
		promptKind := "main"
		if attempt > 1 {
			system = CriticSimpleSystemPrompt(c.cfg.Limits)
			promptKind = "simple"
		}

		c.log.Infow("running critic review",
			"unit", unit.Key(), "attempt", attempt, "prompt", promptKind)

		// The caller stamps its own attempt suffix on the label, so the
		// critic round is identified by prompt kind instead.
		out, err := c.caller.CallJSON(ctx, CallSpec{
			Model:       c.cfg.CriticModel,
			System:      system,
			User:        userPrompt,
			Temperature: c.cfg.CriticTemperature,
			Label:       fmt.Sprintf("critic:%s:%s", unit.Key(), promptKind),
			Attempts:    2,
		})
		if err != nil {
			lastErr = err
			continue
		}

		pool, verrs, err := DecodePool(out, c.cfg.Limits)
		if err != nil {
			lastErr = err
			c.log.Warnw("critic output failed structural checks",
				"unit", unit.Key(), "attempt", attempt, "error", err)
			continue
		}
		if len(verrs) > 0 {
			lastErr = fmt.Errorf("critic output still invalid: %s", FormatValidationErrors(verrs))
			c.log.Warnw("critic output failed content validation",
				"unit", unit.Key(), "attempt", attempt, "violations", len(verrs))
			continue
		}
		return pool, nil
	}

	return Pool{}, &StageError{Stage: "critic", Unit: unit, Err: lastErr}
}

// DecodePool turns raw JSON into a validated pool. It checks the
// structural schema, decodes, auto-truncates over-length text, then
// runs the content rules. A non-nil error means a structural failure;
// a non-empty ValidationError slice means content violations.
func DecodePool(raw json.RawMessage, limits Limits) (Pool, []ValidationError, error) {
	if err := ValidateShape(raw); err != nil {
		return Pool{}, nil, err
	}

	var pool Pool
	if err := json.Unmarshal(raw, &pool); err != nil {
		return Pool{}, nil, fmt.Errorf("decoding pool: %w", err)
	}

	TruncateOverages(&pool, limits)
	return pool, ValidatePool(pool, limits), nil
}
