package quizgen

import (
	"fmt"
	"strings"
)

// ValidationError describes one rule violation within a pool.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// WordCount counts whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

var optionKeys = []string{"A", "B", "C", "D", "E"}

// ValidatePool checks every content rule on a pool: word-count bounds,
// exactly five options keyed A through E, and exactly one correct
// option per question. It returns all violations, not just the first.
func ValidatePool(pool Pool, limits Limits) []ValidationError {
	var errs []ValidationError

	if len(pool.Questions) == 0 {
		return []ValidationError{{Field: "quiz_pool", Message: "pool is empty"}}
	}

	for i, q := range pool.Questions {
		loc := fmt.Sprintf("quiz_pool[%d]", i)

		if n := WordCount(q.Question); n < limits.QuestionWordMin || n > limits.QuestionWordMax {
			errs = append(errs, ValidationError{
				Field: loc + ".question",
				Message: fmt.Sprintf("%d words, need %d-%d",
					n, limits.QuestionWordMin, limits.QuestionWordMax),
			})
		}

		if n := WordCount(q.Explanation); n < limits.ExplanationWordMin || n > limits.ExplanationWordMax {
			errs = append(errs, ValidationError{
				Field: loc + ".explanation",
				Message: fmt.Sprintf("%d words, need %d-%d",
					n, limits.ExplanationWordMin, limits.ExplanationWordMax),
			})
		}

		if len(q.Options) != len(optionKeys) {
			errs = append(errs, ValidationError{
				Field:   loc + ".options",
				Message: fmt.Sprintf("%d options, need exactly %d", len(q.Options), len(optionKeys)),
			})
			continue
		}

		correct := 0
		for j, opt := range q.Options {
			optLoc := fmt.Sprintf("%s.options[%s]", loc, optionKeys[j])

			if opt.Key != optionKeys[j] {
				errs = append(errs, ValidationError{
					Field:   optLoc + ".key",
					Message: fmt.Sprintf("key %q, need %q", opt.Key, optionKeys[j]),
				})
			}
			if opt.IsCorrect {
				correct++
			}

			if n := WordCount(opt.Text); n < limits.OptionWordMin || n > limits.OptionWordMax {
				errs = append(errs, ValidationError{
					Field: optLoc + ".text",
					Message: fmt.Sprintf("%d words, need %d-%d",
						n, limits.OptionWordMin, limits.OptionWordMax),
				})
			}
			if n := WordCount(opt.Rationale); n > limits.RationaleWordMax {
				errs = append(errs, ValidationError{
					Field:   optLoc + ".rationale",
					Message: fmt.Sprintf("%d words, max %d", n, limits.RationaleWordMax),
				})
			}
		}

		if correct != 1 {
			errs = append(errs, ValidationError{
				Field:   loc + ".options",
				Message: fmt.Sprintf("%d options marked correct, need exactly 1", correct),
			})
		}
	}

	return errs
}

// FormatValidationErrors renders violations for logs and critic prompts.
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return "no violations"
	}
	var b strings.Builder
	for i, e := range errs {
		fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, e.Field, e.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}
