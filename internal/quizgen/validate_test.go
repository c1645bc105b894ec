package quizgen

import (
	"strings"
	"testing"
)

func TestValidatePool_EmptyPool(t *testing.T) {
	errs := ValidatePool(Pool{}, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Field != "quiz_pool" {
		t.Errorf("unexpected field: %s", errs[0].Field)
	}
}

func TestValidatePool_ShortQuestion(t *testing.T) {
	pool := validPool(1)
	pool.Questions[0].Question = "Too short to pass"
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %s", len(errs), FormatValidationErrors(errs))
	}
	if !strings.Contains(errs[0].Field, ".question") {
		t.Errorf("unexpected field: %s", errs[0].Field)
	}
}

func TestValidatePool_ShortOption(t *testing.T) {
	pool := validPool(1)
	pool.Questions[0].Options[2].Text = "Load balancers distribute traffic"
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %s", len(errs), FormatValidationErrors(errs))
	}
	if !strings.Contains(errs[0].Field, "options[C].text") {
		t.Errorf("unexpected field: %s", errs[0].Field)
	}
}

func TestValidatePool_MissingExplanation(t *testing.T) {
	pool := validPool(1)
	pool.Questions[0].Explanation = ""
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Field, ".explanation") {
		t.Errorf("unexpected field: %s", errs[0].Field)
	}
}

func TestValidatePool_FourOptions(t *testing.T) {
	pool := validPool(1)
	pool.Questions[0].Options = pool.Questions[0].Options[:4]
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Message, "4 options") {
		t.Errorf("unexpected message: %s", errs[0].Message)
	}
}

func TestValidatePool_NoCorrectOption(t *testing.T) {
	pool := validPool(1)
	pool.Questions[0].Options[0].IsCorrect = false
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Message, "0 options marked correct") {
		t.Errorf("unexpected message: %s", errs[0].Message)
	}
}

func TestValidatePool_TwoCorrectOptions(t *testing.T) {
	pool := validPool(1)
	pool.Questions[0].Options[1].IsCorrect = true
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Message, "2 options marked correct") {
		t.Errorf("unexpected message: %s", errs[0].Message)
	}
}

func TestValidatePool_WrongOptionKey(t *testing.T) {
	pool := validPool(1)
	pool.Questions[0].Options[4].Key = "F"
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Field, "options[E].key") {
		t.Errorf("unexpected field: %s", errs[0].Field)
	}
}

func TestValidatePool_LongRationale(t *testing.T) {
	pool := validPool(1)
	pool.Questions[0].Options[0].Rationale = strings.Repeat("word ", 31)
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Field, ".rationale") {
		t.Errorf("unexpected field: %s", errs[0].Field)
	}
}

func TestValidatePool_CollectsAllViolations(t *testing.T) {
	pool := validPool(2)
	pool.Questions[0].Question = "short"
	pool.Questions[1].Explanation = "too short"
	errs := ValidatePool(pool, DefaultLimits())
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %s", len(errs), FormatValidationErrors(errs))
	}
}

func TestCorrectOption(t *testing.T) {
	q := validQuestion(1)
	opt := q.CorrectOption()
	if opt == nil || opt.Key != "A" {
		t.Fatalf("expected option A, got %+v", opt)
	}

	q.Options[1].IsCorrect = true
	if q.CorrectOption() != nil {
		t.Fatal("expected nil for two correct options")
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two  words", 2},
		{"  padded three words  ", 3},
	}
	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
