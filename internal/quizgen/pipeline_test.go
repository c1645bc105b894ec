package quizgen

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/fwr/quizgen/internal/llm"
)

func newTestPipeline(mock *llm.MockProvider) *Pipeline {
	cfg := DefaultConfig()
	caller := NewCaller(mock, nil, nil)
	gen := NewGenerator(caller, cfg)
	critic := NewCritic(caller, cfg, nil)
	return NewPipeline(gen, critic, cfg, nil, rand.New(rand.NewSource(1)))
}

// brokenPool returns a pool whose first question has an option below the
// minimum word count, so content validation fails but the shape is fine.
func brokenPool(n int) Pool {
	pool := validPool(n)
	pool.Questions[0].Options[0].Text = "Too short"
	return pool
}

func TestPipelineRun_ValidPoolStillReviewed(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: poolJSON(t, validPool(25))},
		llm.MockResponse{Text: poolJSON(t, validPool(25))},
	)
	p := newTestPipeline(mock)
	unit := Unit{Sector: "finance", Career: "auditor", Level: 3}

	result, err := p.Run(context.Background(), unit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Repaired {
		t.Error("a pool that passed raw validation should not be flagged repaired")
	}
	if result.Generated != 25 || result.Unique != 25 {
		t.Errorf("generated/unique = %d/%d, want 25/25", result.Generated, result.Unique)
	}
	if result.Selected != 20 || result.UnderTarget {
		t.Errorf("selected = %d under=%v, want 20 with enough questions", result.Selected, result.UnderTarget)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected generator and critic calls, got %d", mock.CallCount())
	}
	// level 3 sits in the second difficulty tier
	if mock.Calls[0].Model != "gemini-pro" {
		t.Errorf("model = %q, want gemini-pro", mock.Calls[0].Model)
	}
	if mock.Calls[1].Temperature != 0.3 {
		t.Errorf("critic temperature = %v, want 0.3", mock.Calls[1].Temperature)
	}
	if mock.Calls[0].System == mock.Calls[1].System {
		t.Error("second call should carry the critic system prompt")
	}
}

func TestPipelineRun_SoftSkillsUnit(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: poolJSON(t, validPool(20))},
		llm.MockResponse{Text: poolJSON(t, validPool(20))},
	)
	p := newTestPipeline(mock)

	result, err := p.Run(context.Background(), Unit{SoftSkills: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Selected != 20 {
		t.Errorf("selected = %d, want 20", result.Selected)
	}
	if mock.Calls[0].Model != "gemini-flash" {
		t.Errorf("model = %q, want gemini-flash", mock.Calls[0].Model)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("temperature = %v, want 0.5", mock.Calls[0].Temperature)
	}
}

func TestPipelineRun_CriticRepairsInvalidPool(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: poolJSON(t, brokenPool(20))},
		llm.MockResponse{Text: poolJSON(t, validPool(20))},
	)
	p := newTestPipeline(mock)
	unit := Unit{Sector: "technology", Career: "BACKEND_DEVELOPER", Level: 1}

	result, err := p.Run(context.Background(), unit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Repaired {
		t.Error("expected the critic to run")
	}
	if result.Selected != 20 {
		t.Errorf("selected = %d, want 20", result.Selected)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 model calls, got %d", mock.CallCount())
	}
	if mock.Calls[1].Model != "gemini-pro" {
		t.Errorf("critic model = %q, want gemini-pro", mock.Calls[1].Model)
	}
	if mock.Calls[1].Temperature != 0.3 {
		t.Errorf("critic temperature = %v, want 0.3", mock.Calls[1].Temperature)
	}
}

func TestPipelineRun_CriticSecondAttemptUsesSimplePrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: poolJSON(t, brokenPool(20))},
		llm.MockResponse{Text: poolJSON(t, brokenPool(20))},
		llm.MockResponse{Text: poolJSON(t, validPool(20))},
	)
	p := newTestPipeline(mock)
	unit := Unit{Sector: "education", Career: "teacher", Level: 2}

	result, err := p.Run(context.Background(), unit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Repaired {
		t.Error("expected the critic to run")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 model calls, got %d", mock.CallCount())
	}
	if mock.Calls[1].System == mock.Calls[2].System {
		t.Error("expected a different system prompt on the second critic attempt")
	}
}

func TestPipelineRun_CriticExhausted(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: poolJSON(t, brokenPool(20))},
		llm.MockResponse{Text: poolJSON(t, brokenPool(20))},
		llm.MockResponse{Text: poolJSON(t, brokenPool(20))},
	)
	p := newTestPipeline(mock)
	unit := Unit{Sector: "construction", Career: "electrician", Level: 4}

	_, err := p.Run(context.Background(), unit)
	if err == nil {
		t.Fatal("expected error")
	}
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected StageError, got %T: %v", err, err)
	}
	if stageErr.Stage != "critic" {
		t.Errorf("stage = %q, want critic", stageErr.Stage)
	}
}

func TestPipelineRun_GeneratorFailure(t *testing.T) {
	// empty queue means every call fails with a provider error
	mock := llm.NewMockProvider()
	p := newTestPipeline(mock)
	unit := Unit{Sector: "finance", Career: "banker", Level: 1}

	_, err := p.Run(context.Background(), unit)
	if err == nil {
		t.Fatal("expected error")
	}
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected StageError, got %T: %v", err, err)
	}
	if stageErr.Stage != "generator" {
		t.Errorf("stage = %q, want generator", stageErr.Stage)
	}
}

func TestPipelineRun_DropsDuplicates(t *testing.T) {
	pool := validPool(22)
	pool.Questions[21].Question = pool.Questions[0].Question
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: poolJSON(t, pool)},
		llm.MockResponse{Text: poolJSON(t, pool)},
	)
	p := newTestPipeline(mock)

	result, err := p.Run(context.Background(), Unit{Sector: "health_social_care", Career: "nurse", Level: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 22 || result.Unique != 21 {
		t.Errorf("generated/unique = %d/%d, want 22/21", result.Generated, result.Unique)
	}
}

func TestPipelineRun_UnderTarget(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: poolJSON(t, validPool(8))},
		llm.MockResponse{Text: poolJSON(t, validPool(8))},
	)
	p := newTestPipeline(mock)

	result, err := p.Run(context.Background(), Unit{Sector: "finance", Career: "auditor", Level: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.UnderTarget {
		t.Error("expected under-target flag")
	}
	if result.Selected != 8 {
		t.Errorf("selected = %d, want 8", result.Selected)
	}
}
