package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/fwr/quizgen/internal/store"
)

// recordingRepo captures appended events in memory.
type recordingRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func (r *recordingRepo) ListLLMRequests(context.Context, store.EventQuery) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Text:  "response",
		Usage: Usage{InputTokens: 100, OutputTokens: 250},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	ctx := WithLabel(context.Background(), "generator:finance_auditor_lvl2:attempt1")
	_, err := p.Generate(ctx, Request{Model: "gemini-flash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Label != "generator:finance_auditor_lvl2:attempt1" {
		t.Errorf("label = %q", ev.Label)
	}
	if !ev.Success {
		t.Error("success not recorded")
	}
	if ev.InputTokens != 100 || ev.OutputTokens != 250 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("api down")})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{Model: "gemini-pro"}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("failure recorded as success")
	}
	if ev.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
	if ev.Label != "unknown" {
		t.Errorf("label = %q, want unknown for unlabeled context", ev.Label)
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	repo := &recordingRepo{err: errors.New("db locked")}
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("logging failure leaked into the request: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("text = %q", resp.Text)
	}
}

func TestLabelRoundTrip(t *testing.T) {
	ctx := WithLabel(context.Background(), "critic:soft_skills:attempt2")
	if got := LabelFrom(ctx); got != "critic:soft_skills:attempt2" {
		t.Errorf("label = %q", got)
	}
	if got := LabelFrom(context.Background()); got != "unknown" {
		t.Errorf("default label = %q", got)
	}
}
