package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwr/quizgen/internal/quizgen"
)

// ProductionOption mirrors the internal option shape; all five options
// are preserved with their keys and rationales.
type ProductionOption struct {
	Key       string `json:"key"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Rationale string `json:"rationale"`
}

// ProductionQuestion is one question in the production quiz schema.
type ProductionQuestion struct {
	QuestionText string             `json:"question_text"`
	QuestionType string             `json:"question_type"`
	Points       int                `json:"points"`
	Explanation  string             `json:"explanation"`
	Options      []ProductionOption `json:"options"`
}

// ProductionQuiz is one career/level assessment.
type ProductionQuiz struct {
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Specialization   string               `json:"specialization"`
	DifficultyLevel  int                  `json:"difficulty_level"`
	TimeLimitMinutes int                  `json:"time_limit_minutes"`
	PassingScore     float64              `json:"passing_score"`
	Questions        []ProductionQuestion `json:"questions"`
}

// ProductionOutput is the per-sector file the platform imports.
type ProductionOutput struct {
	Quizzes []ProductionQuiz `json:"quizzes"`
}

// ToProductionQuestion converts an internal question. The question type
// is always multiple_choice and every question is worth one point.
func ToProductionQuestion(q quizgen.Question) ProductionQuestion {
	opts := make([]ProductionOption, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, ProductionOption{
			Key:       o.Key,
			Text:      o.Text,
			IsCorrect: o.IsCorrect,
			Rationale: o.Rationale,
		})
	}
	return ProductionQuestion{
		QuestionText: q.Question,
		QuestionType: "multiple_choice",
		Points:       1,
		Explanation:  q.Explanation,
		Options:      opts,
	}
}

// ToProductionQuiz converts one career/level pool into a production
// quiz with its difficulty metadata attached. The specialization keeps
// the exact career identifier.
func ToProductionQuiz(career string, level int, questions []quizgen.Question) ProductionQuiz {
	meta := MetaForLevel(level)
	display := titleCase(career)

	prodQuestions := make([]ProductionQuestion, 0, len(questions))
	for _, q := range questions {
		prodQuestions = append(prodQuestions, ToProductionQuestion(q))
	}

	return ProductionQuiz{
		Title:            fmt.Sprintf("%s Interview - Level %d", display, level),
		Description:      fmt.Sprintf("Level %d assessment questions for %s role", level, display),
		Specialization:   career,
		DifficultyLevel:  level,
		TimeLimitMinutes: meta.TimeLimitMinutes,
		PassingScore:     meta.PassingScore,
		Questions:        prodQuestions,
	}
}

// SortQuizzes orders quizzes by specialization, then difficulty level.
func SortQuizzes(quizzes []ProductionQuiz) {
	sort.Slice(quizzes, func(i, j int) bool {
		if quizzes[i].Specialization != quizzes[j].Specialization {
			return quizzes[i].Specialization < quizzes[j].Specialization
		}
		return quizzes[i].DifficultyLevel < quizzes[j].DifficultyLevel
	})
}

// titleCase renders a career identifier for quiz titles, e.g.
// "financial_analyst" becomes "Financial Analyst".
func titleCase(id string) string {
	words := strings.Split(strings.ToLower(strings.ReplaceAll(id, "_", " ")), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
