package quizgen

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fwr/quizgen/internal/artifact"
	"github.com/fwr/quizgen/internal/llm"
)

func TestCriticReview_LabelStampsAttemptOnce(t *testing.T) {
	dir := t.TempDir()
	store, err := artifact.NewStore(dir)
	if err != nil {
		t.Fatalf("artifact store: %v", err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{Text: poolJSON(t, validPool(20))})
	cfg := DefaultConfig()
	critic := NewCritic(NewCaller(mock, store, nil), cfg, nil)
	unit := Unit{Sector: "finance", Career: "auditor", Level: 3}

	if _, err := critic.Review(context.Background(), unit, json.RawMessage(poolJSON(t, validPool(20))), nil); err != nil {
		t.Fatalf("review: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "critic_finance_auditor_lvl3_main_attempt1_") {
		t.Errorf("artifact name = %q, want single attempt stamp after the prompt kind", name)
	}
	if strings.Contains(name, "attempt1_attempt") {
		t.Errorf("artifact name %q carries a doubled attempt stamp", name)
	}
}

func TestCriticReview_SecondRoundLabelCarriesPromptKind(t *testing.T) {
	dir := t.TempDir()
	store, err := artifact.NewStore(dir)
	if err != nil {
		t.Fatalf("artifact store: %v", err)
	}

	mock := llm.NewMockProvider(
		llm.MockResponse{Text: poolJSON(t, brokenPool(20))},
		llm.MockResponse{Text: poolJSON(t, validPool(20))},
	)
	cfg := DefaultConfig()
	critic := NewCritic(NewCaller(mock, store, nil), cfg, nil)
	unit := Unit{Sector: "education", Career: "teacher", Level: 2}

	if _, err := critic.Review(context.Background(), unit, json.RawMessage(poolJSON(t, brokenPool(20))), nil); err != nil {
		t.Fatalf("review: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 artifacts, got %d: %v", len(names), names)
	}

	var sawMain, sawSimple bool
	for _, name := range names {
		if strings.HasPrefix(name, "critic_education_teacher_lvl2_main_attempt1_") {
			sawMain = true
		}
		if strings.HasPrefix(name, "critic_education_teacher_lvl2_simple_attempt1_") {
			sawSimple = true
		}
	}
	if !sawMain || !sawSimple {
		t.Errorf("artifacts %v, want one main and one simple round", names)
	}
}
