package quizgen

import (
	"encoding/json"
	"testing"
)

func TestExtractJSON_Direct(t *testing.T) {
	raw, ok := ExtractJSON(`{"quiz_pool": []}`)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if !json.Valid(raw) {
		t.Fatalf("invalid JSON returned: %s", raw)
	}
}

func TestExtractJSON_CodeFence(t *testing.T) {
	input := "```json\n{\"quiz_pool\": [{\"id\": 1}]}\n```"
	raw, ok := ExtractJSON(input)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, found := obj["quiz_pool"]; !found {
		t.Fatalf("quiz_pool missing: %s", raw)
	}
}

func TestExtractJSON_FenceWithoutLanguageTag(t *testing.T) {
	input := "```\n{\"quiz_pool\": []}\n```"
	if _, ok := ExtractJSON(input); !ok {
		t.Fatal("expected extraction to succeed")
	}
}

func TestExtractJSON_SurroundingCommentary(t *testing.T) {
	input := "Here is your quiz:\n{\"quiz_pool\": [{\"id\": 1}]}\nLet me know if you need more."
	raw, ok := ExtractJSON(input)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if !json.Valid(raw) {
		t.Fatalf("invalid JSON returned: %s", raw)
	}
}

func TestExtractJSON_TrailingComma(t *testing.T) {
	input := `some text {"quiz_pool": [{"id": 1,},],} more text`
	raw, ok := ExtractJSON(input)
	if !ok {
		t.Fatal("expected trailing commas to be cleaned")
	}
	if !json.Valid(raw) {
		t.Fatalf("invalid JSON returned: %s", raw)
	}
}

func TestExtractJSON_ControlCharacters(t *testing.T) {
	input := "prefix {\"quiz_pool\": [{\"id\": 1, \"question\": \"bad\x01chars\"}]} suffix"
	raw, ok := ExtractJSON(input)
	if !ok {
		t.Fatal("expected control characters to be stripped")
	}
	if !json.Valid(raw) {
		t.Fatalf("invalid JSON returned: %s", raw)
	}
}

func TestExtractJSON_SingleElementArrayUnwrapped(t *testing.T) {
	raw, ok := ExtractJSON(`[{"quiz_pool": [{"id": 1}]}]`)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	var obj struct {
		QuizPool []json.RawMessage `json:"quiz_pool"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("expected an object after unwrap: %v", err)
	}
	if len(obj.QuizPool) != 1 {
		t.Fatalf("expected 1 question, got %d", len(obj.QuizPool))
	}
}

func TestExtractJSON_MultiElementArrayMerged(t *testing.T) {
	raw, ok := ExtractJSON(`[{"quiz_pool": [{"id": 1}, {"id": 2}]}, {"quiz_pool": [{"id": 3}]}]`)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	var obj struct {
		QuizPool []json.RawMessage `json:"quiz_pool"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("unmarshal merged pool: %v", err)
	}
	if len(obj.QuizPool) != 3 {
		t.Fatalf("expected 3 merged questions, got %d", len(obj.QuizPool))
	}
}

func TestExtractJSON_ArrayWithoutQuizPoolRejected(t *testing.T) {
	if _, ok := ExtractJSON(`[{"a": 1}, {"b": 2}]`); ok {
		t.Fatal("expected rejection of multi-element array without quiz_pool")
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	for _, input := range []string{"", "   ", "no braces here", "{broken"} {
		if _, ok := ExtractJSON(input); ok {
			t.Errorf("expected failure for %q", input)
		}
	}
}
