package quizgen

import (
	"strings"
	"testing"
)

func TestGeneratorSystemPrompt(t *testing.T) {
	cfg := DefaultConfig()
	unit := Unit{Sector: "technology", Career: "BACKEND_DEVELOPER", Level: 3}
	prompt := GeneratorSystemPrompt(unit, ContextFor(unit.Sector, unit.Career), cfg)

	for _, want := range []string{
		"BACKEND DEVELOPER",
		"Level: 3/5",
		"EXACTLY 20 unique multiple-choice questions",
		"MINIMUM 12 words, MAXIMUM 28 words",
		"MINIMUM 10 words, MAXIMUM 24 words",
		"MINIMUM 15 words, MAXIMUM 50 words",
		"MAXIMUM 30 words",
		`"quiz_pool"`,
		"EXACTLY one correct option",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("generator prompt missing %q", want)
		}
	}
}

func TestGeneratorSystemPrompt_RoleContextLines(t *testing.T) {
	cfg := DefaultConfig()
	unit := Unit{Sector: "finance", Career: "auditor", Level: 1}
	rc := RoleContext{Branch: "Accounting & Auditing"}
	prompt := GeneratorSystemPrompt(unit, rc, cfg)

	if strings.Contains(prompt, "()") {
		t.Error("prompt contains empty parenthetical for missing description")
	}
	if !strings.Contains(prompt, "- Branch: Accounting & Auditing\n") {
		t.Error("branch line missing or carries an unexpected suffix")
	}
	if !strings.Contains(prompt, "- Role: auditor\n") {
		t.Error("role line missing or carries an unexpected suffix")
	}
}

func TestCriticUserPrompt(t *testing.T) {
	errs := []ValidationError{{Field: "questions[0].options[A].text", Message: "too short"}}
	prompt := CriticUserPrompt(`{"quiz_pool": []}`, errs)

	if !strings.Contains(prompt, "=== VALIDATION ERRORS ===") {
		t.Error("missing validation errors header")
	}
	if !strings.Contains(prompt, "questions[0].options[A].text") {
		t.Error("missing error field path")
	}
	if !strings.Contains(prompt, "=== JSON TO FIX ===") {
		t.Error("missing JSON header")
	}
	if !strings.Contains(prompt, `{"quiz_pool": []}`) {
		t.Error("missing failed JSON payload")
	}
}

func TestCriticUserPrompt_NoViolations(t *testing.T) {
	prompt := CriticUserPrompt(`{"quiz_pool": []}`, nil)

	if strings.Contains(prompt, "=== VALIDATION ERRORS ===") {
		t.Error("clean pool should not carry an error block")
	}
	if !strings.Contains(prompt, "Review the following quiz JSON") {
		t.Error("missing review framing")
	}
	if !strings.Contains(prompt, "=== JSON TO FIX ===") {
		t.Error("missing JSON header")
	}
	if !strings.Contains(prompt, `{"quiz_pool": []}`) {
		t.Error("missing pool payload")
	}
}

func TestCriticPrompts_CarryLimits(t *testing.T) {
	limits := DefaultLimits()

	main := CriticSystemPrompt(limits)
	simple := CriticSimpleSystemPrompt(limits)

	for _, want := range []string{"10", "24", "15", "50"} {
		if !strings.Contains(main, want) {
			t.Errorf("main critic prompt missing bound %s", want)
		}
		if !strings.Contains(simple, want) {
			t.Errorf("simple critic prompt missing bound %s", want)
		}
	}
	if main == simple {
		t.Error("main and simple critic prompts should differ")
	}
}

func TestSoftSkillsPrompts(t *testing.T) {
	cfg := DefaultConfig()

	system := SoftSkillsSystemPrompt(cfg)
	if !strings.Contains(system, "EXACTLY 20 scenario-based") {
		t.Error("system prompt missing question count")
	}
	if !strings.Contains(system, "conflict resolution") {
		t.Error("system prompt missing skill coverage list")
	}

	user := SoftSkillsUserPrompt(cfg)
	if !strings.Contains(user, "20 soft skills interview questions") {
		t.Error("user prompt missing count")
	}
}
