package quizgen

import (
	"math/rand"
	"testing"
)

func TestSelect_TruncatesAndRenumbers(t *testing.T) {
	questions := validPool(30).Questions
	rng := rand.New(rand.NewSource(1))

	out, under := Select(questions, 20, rng)
	if under {
		t.Fatal("expected enough questions")
	}
	if len(out) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(out))
	}
	for i, q := range out {
		if q.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, q.ID)
		}
	}
}

func TestSelect_UnderTarget(t *testing.T) {
	questions := validPool(12).Questions
	rng := rand.New(rand.NewSource(1))

	out, under := Select(questions, 20, rng)
	if !under {
		t.Fatal("expected under-target flag")
	}
	if len(out) != 12 {
		t.Fatalf("expected all 12 questions kept, got %d", len(out))
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	questions := validPool(10).Questions
	firstID := questions[0].ID
	firstText := questions[0].Question

	Select(questions, 5, rand.New(rand.NewSource(42)))

	if questions[0].ID != firstID || questions[0].Question != firstText {
		t.Fatal("input slice was mutated")
	}
}

func TestSelect_Shuffles(t *testing.T) {
	questions := validPool(20).Questions

	out, _ := Select(questions, 20, rand.New(rand.NewSource(7)))

	same := true
	for i := range out {
		if out[i].Question != questions[i].Question {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected shuffled order for seed 7")
	}
}
