package quizgen

import (
	"context"
	"errors"
	"testing"

	"github.com/fwr/quizgen/internal/llm"
)

func TestCallJSON_FencedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "```json\n" + poolJSON(t, validPool(2)) + "\n```",
	})
	caller := NewCaller(mock, nil, nil)

	raw, err := caller.CallJSON(context.Background(), CallSpec{
		Model: "gemini-flash", Label: "test", Attempts: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pool, verrs, err := DecodePool(raw, DefaultLimits())
	if err != nil || len(verrs) != 0 {
		t.Fatalf("decode failed: %v %v", err, verrs)
	}
	if len(pool.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(pool.Questions))
	}
}

func TestCallJSON_RetriesOnGarbage(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "I cannot produce JSON right now."},
		llm.MockResponse{Text: poolJSON(t, validPool(1))},
	)
	caller := NewCaller(mock, nil, nil)

	_, err := caller.CallJSON(context.Background(), CallSpec{Label: "test", Attempts: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestCallJSON_ExhaustsAttempts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "nothing useful"},
		llm.MockResponse{Text: "still nothing"},
	)
	caller := NewCaller(mock, nil, nil)

	_, err := caller.CallJSON(context.Background(), CallSpec{Label: "test", Attempts: 2})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestCallJSON_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{"quiz_pool": []}`})
	caller := NewCaller(mock, nil, nil)

	_, err := caller.CallJSON(context.Background(), CallSpec{
		Model:       "gemini-pro",
		System:      "system prompt",
		User:        "user prompt",
		Temperature: 0.3,
		Label:       "test",
		Attempts:    1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Model != "gemini-pro" {
		t.Errorf("model = %q", req.Model)
	}
	if req.System != "system prompt" {
		t.Errorf("system = %q", req.System)
	}
	if !req.JSONMode {
		t.Error("expected JSON mode")
	}
	if req.Temperature != 0.3 {
		t.Errorf("temperature = %v", req.Temperature)
	}
	if len(req.Messages) != 1 || req.Messages[0].Content != "user prompt" {
		t.Errorf("messages = %+v", req.Messages)
	}
}

func TestCallJSON_ContextCancelled(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{"quiz_pool": []}`})
	caller := NewCaller(mock, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := caller.CallJSON(ctx, CallSpec{Label: "test", Attempts: 1}); err == nil {
		t.Fatal("expected context error")
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no calls, got %d", mock.CallCount())
	}
}
