package quizgen

import (
	"encoding/json"
	"fmt"
	"testing"
)

// validQuestion builds a question satisfying every content rule. The id
// is embedded in the question text so pools stay free of duplicates.
func validQuestion(id int) Question {
	optionText := func(topic string) string {
		return fmt.Sprintf("It handles %s across multiple backend systems to keep the overall platform responsive under load.", topic)
	}
	opts := []Option{
		{Key: "A", Text: optionText("request distribution"), IsCorrect: true, Rationale: "Correct because it matches the component's documented behaviour."},
		{Key: "B", Text: optionText("credential storage"), IsCorrect: false, Rationale: "Describes a secrets manager instead."},
		{Key: "C", Text: optionText("artifact caching"), IsCorrect: false, Rationale: "Describes a build cache instead."},
		{Key: "D", Text: optionText("metric aggregation"), IsCorrect: false, Rationale: "Describes a monitoring stack instead."},
		{Key: "E", Text: optionText("log shipping"), IsCorrect: false, Rationale: "Describes a log pipeline instead."},
	}
	return Question{
		ID:          id,
		Question:    fmt.Sprintf("What is the primary operational purpose of component number %d in a modern production deployment environment today?", id),
		Explanation: "The correct answer describes the actual behaviour of the component while the other options describe unrelated systems that serve entirely different purposes.",
		Options:     opts,
	}
}

func validPool(n int) Pool {
	pool := Pool{}
	for i := 1; i <= n; i++ {
		pool.Questions = append(pool.Questions, validQuestion(i))
	}
	return pool
}

func poolJSON(t *testing.T, pool Pool) string {
	t.Helper()
	data, err := json.Marshal(pool)
	if err != nil {
		t.Fatalf("marshal pool: %v", err)
	}
	return string(data)
}

func TestValidQuestionFixtureIsValid(t *testing.T) {
	errs := ValidatePool(validPool(3), DefaultLimits())
	if len(errs) != 0 {
		t.Fatalf("fixture should validate, got: %s", FormatValidationErrors(errs))
	}
}
