package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwr/quizgen/internal/quizgen"
)

func sampleQuestions(n int) []quizgen.Question {
	questions := make([]quizgen.Question, n)
	for i := range questions {
		questions[i] = quizgen.Question{
			ID:          i + 1,
			Question:    "What does the audit trail record during a quarterly review cycle?",
			Explanation: "The audit trail records every change made to financial records during the period.",
			Options: []quizgen.Option{
				{Key: "A", Text: "Every change made to financial records", IsCorrect: true, Rationale: "Audit trails track record changes."},
				{Key: "B", Text: "Only the final approved balances", IsCorrect: false, Rationale: "Final balances are a summary, not a trail."},
				{Key: "C", Text: "Staff attendance during the review", IsCorrect: false, Rationale: "Attendance is not part of the audit trail."},
				{Key: "D", Text: "Vendor contact information", IsCorrect: false, Rationale: "Vendor data lives in procurement systems."},
				{Key: "E", Text: "Office expense receipts only", IsCorrect: false, Rationale: "Receipts are inputs, not the trail itself."},
			},
		}
	}
	return questions
}

func TestMetaForLevel(t *testing.T) {
	tests := []struct {
		level       int
		wantMinutes int
		wantScore   float64
	}{
		{1, 30, 70.0},
		{2, 40, 70.0},
		{3, 50, 75.0},
		{4, 50, 75.0},
		{5, 60, 80.0},
		{7, 30, 70.0}, // unknown level falls back to level 1
	}
	for _, tt := range tests {
		meta := MetaForLevel(tt.level)
		if meta.TimeLimitMinutes != tt.wantMinutes || meta.PassingScore != tt.wantScore {
			t.Errorf("level %d: got %d/%v, want %d/%v",
				tt.level, meta.TimeLimitMinutes, meta.PassingScore, tt.wantMinutes, tt.wantScore)
		}
	}
}

func TestToProductionQuiz(t *testing.T) {
	quiz := ToProductionQuiz("financial_analyst", 3, sampleQuestions(2))

	if quiz.Title != "Financial Analyst Interview - Level 3" {
		t.Errorf("title = %q", quiz.Title)
	}
	if quiz.Description != "Level 3 assessment questions for Financial Analyst role" {
		t.Errorf("description = %q", quiz.Description)
	}
	if quiz.Specialization != "financial_analyst" {
		t.Errorf("specialization = %q, want the raw identifier", quiz.Specialization)
	}
	if quiz.DifficultyLevel != 3 || quiz.TimeLimitMinutes != 50 || quiz.PassingScore != 75.0 {
		t.Errorf("difficulty metadata = %d/%d/%v", quiz.DifficultyLevel, quiz.TimeLimitMinutes, quiz.PassingScore)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("questions = %d", len(quiz.Questions))
	}

	q := quiz.Questions[0]
	if q.QuestionType != "multiple_choice" {
		t.Errorf("question_type = %q", q.QuestionType)
	}
	if q.Points != 1 {
		t.Errorf("points = %d", q.Points)
	}
	if len(q.Options) != 5 {
		t.Errorf("options = %d", len(q.Options))
	}
	if !q.Options[0].IsCorrect || q.Options[1].IsCorrect {
		t.Error("correct flags lost in conversion")
	}
}

func TestToProductionQuiz_UppercaseCareer(t *testing.T) {
	quiz := ToProductionQuiz("BACKEND_DEVELOPER", 1, nil)
	if quiz.Title != "Backend Developer Interview - Level 1" {
		t.Errorf("title = %q", quiz.Title)
	}
	if quiz.Specialization != "BACKEND_DEVELOPER" {
		t.Errorf("specialization = %q", quiz.Specialization)
	}
}

func TestSortQuizzes(t *testing.T) {
	quizzes := []ProductionQuiz{
		{Specialization: "banker", DifficultyLevel: 2},
		{Specialization: "auditor", DifficultyLevel: 3},
		{Specialization: "auditor", DifficultyLevel: 1},
	}
	SortQuizzes(quizzes)

	want := []struct {
		spec  string
		level int
	}{
		{"auditor", 1}, {"auditor", 3}, {"banker", 2},
	}
	for i, w := range want {
		if quizzes[i].Specialization != w.spec || quizzes[i].DifficultyLevel != w.level {
			t.Fatalf("position %d: got %s/%d, want %s/%d",
				i, quizzes[i].Specialization, quizzes[i].DifficultyLevel, w.spec, w.level)
		}
	}
}

func TestWriter_SaveAndLoadPool(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	unit := quizgen.Unit{Sector: "finance", Career: "auditor", Level: 2}
	questions := sampleQuestions(3)

	if err := w.SavePool(unit, questions); err != nil {
		t.Fatalf("save: %v", err)
	}

	wantPath := filepath.Join(w.BaseDir(), "by_sector", "finance", "auditor", "final", "level_2_final.json")
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("pool file missing: %v", err)
	}

	loaded, err := w.LoadPool(unit)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("loaded %d questions, want 3", len(loaded))
	}
	if loaded[0].Question != questions[0].Question {
		t.Error("question text changed across round trip")
	}
}

func TestWriter_SoftSkillsPath(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	unit := quizgen.Unit{SoftSkills: true}

	if err := w.SavePool(unit, sampleQuestions(1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	wantPath := filepath.Join(w.BaseDir(), "by_sector", "soft_skills", "final", "soft_skills_final.json")
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("soft skills pool missing: %v", err)
	}
}

func TestWriter_LoadMissingPool(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	_, err := w.LoadPool(quizgen.Unit{Sector: "finance", Career: "auditor", Level: 1})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestWriter_ExportSector(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)

	// two saved pools, the rest of the sector missing
	units := []quizgen.Unit{
		{Sector: "finance", Career: "auditor", Level: 2},
		{Sector: "finance", Career: "auditor", Level: 1},
	}
	for _, u := range units {
		if err := w.SavePool(u, sampleQuestions(2)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	path, quizzes, questions, err := w.ExportSector("finance")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if quizzes != 2 || questions != 4 {
		t.Errorf("quizzes/questions = %d/%d, want 2/4", quizzes, questions)
	}
	if filepath.Base(path) != "finance.json" {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var out ProductionOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(out.Quizzes) != 2 {
		t.Fatalf("exported %d quizzes", len(out.Quizzes))
	}
	// sorted by specialization then level
	if out.Quizzes[0].DifficultyLevel != 1 || out.Quizzes[1].DifficultyLevel != 2 {
		t.Error("quizzes not sorted by level")
	}
}

func TestWriter_ExportUnknownSector(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	if _, _, _, err := w.ExportSector("agriculture"); err == nil {
		t.Fatal("expected error for unknown sector")
	}
}
