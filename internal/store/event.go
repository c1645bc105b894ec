package store

import (
	"context"
	"fmt"

	"github.com/fwr/quizgen/ent"
	"github.com/fwr/quizgen/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetLabel(data.Label).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, q EventQuery) ([]LLMRequestEvent, error) {
	query := r.client.LLMRequestEvent.Query()

	if q.Label != "" {
		query = query.Where(llmrequestevent.LabelEQ(q.Label))
	}
	if q.OnlyFailed {
		query = query.Where(llmrequestevent.SuccessEQ(false))
	}
	if !q.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(q.From))
	}
	query = query.Order(ent.Desc(llmrequestevent.FieldTimestamp))
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMRequestEvent{
			ID:        row.ID,
			Timestamp: row.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Label:        row.Label,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return out, nil
}
