package quizgen

import (
	"strings"
	"testing"
)

func TestTruncateOverages_TrimsLongFields(t *testing.T) {
	limits := DefaultLimits()
	pool := validPool(1)
	pool.Questions[0].Question = strings.Repeat("word ", limits.QuestionWordMax+10)
	pool.Questions[0].Explanation = strings.Repeat("word ", limits.ExplanationWordMax+5)
	pool.Questions[0].Options[0].Text = strings.Repeat("word ", limits.OptionWordMax+3)
	pool.Questions[0].Options[0].Rationale = strings.Repeat("word ", limits.RationaleWordMax+1)

	fixed := TruncateOverages(&pool, limits)
	if fixed != 4 {
		t.Fatalf("expected 4 fields trimmed, got %d", fixed)
	}
	if n := WordCount(pool.Questions[0].Question); n != limits.QuestionWordMax {
		t.Errorf("question not trimmed to max: %d words", n)
	}
	if n := WordCount(pool.Questions[0].Explanation); n != limits.ExplanationWordMax {
		t.Errorf("explanation not trimmed to max: %d words", n)
	}
	if n := WordCount(pool.Questions[0].Options[0].Text); n != limits.OptionWordMax {
		t.Errorf("option not trimmed to max: %d words", n)
	}
	if n := WordCount(pool.Questions[0].Options[0].Rationale); n != limits.RationaleWordMax {
		t.Errorf("rationale not trimmed to max: %d words", n)
	}
}

func TestTruncateOverages_LeavesShortTextAlone(t *testing.T) {
	limits := DefaultLimits()
	pool := validPool(1)
	pool.Questions[0].Options[1].Text = "Way too short"

	fixed := TruncateOverages(&pool, limits)
	if fixed != 0 {
		t.Fatalf("expected no fields trimmed, got %d", fixed)
	}
	if pool.Questions[0].Options[1].Text != "Way too short" {
		t.Error("short text was modified")
	}
}

func TestTruncateOverages_ValidPoolUntouched(t *testing.T) {
	limits := DefaultLimits()
	pool := validPool(3)
	if fixed := TruncateOverages(&pool, limits); fixed != 0 {
		t.Fatalf("expected no fixes on valid pool, got %d", fixed)
	}
	if errs := ValidatePool(pool, limits); len(errs) != 0 {
		t.Fatalf("pool invalid after no-op fix: %s", FormatValidationErrors(errs))
	}
}
