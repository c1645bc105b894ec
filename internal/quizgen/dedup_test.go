package quizgen

import "testing"

func TestDedupe_RemovesCaseAndWhitespaceVariants(t *testing.T) {
	questions := []Question{
		{ID: 1, Question: "What does a load balancer do?"},
		{ID: 2, Question: "what  does a load\tbalancer do?"},
		{ID: 3, Question: "  WHAT DOES A LOAD BALANCER DO?  "},
		{ID: 4, Question: "What does a cache do?"},
	}

	out := Dedupe(questions)
	if len(out) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(out))
	}
	if out[0].ID != 1 {
		t.Errorf("expected first occurrence kept, got id %d", out[0].ID)
	}
	if out[1].ID != 4 {
		t.Errorf("expected id 4 second, got %d", out[1].ID)
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	questions := validPool(5).Questions
	once := Dedupe(questions)
	twice := Dedupe(once)
	if len(once) != len(twice) {
		t.Fatalf("dedupe not idempotent: %d vs %d", len(once), len(twice))
	}
}

func TestDedupe_Empty(t *testing.T) {
	if out := Dedupe(nil); len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestNormalizeQuestion(t *testing.T) {
	got := NormalizeQuestion("  What\tIS   a test? ")
	want := "what is a test?"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
