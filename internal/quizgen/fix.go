package quizgen

import "strings"

// TruncateOverages trims text fields that exceed their maximum word
// count down to the limit. Short text cannot be fixed mechanically and
// is left for the critic. It returns the number of fields trimmed.
func TruncateOverages(pool *Pool, limits Limits) int {
	fixed := 0
	for i := range pool.Questions {
		q := &pool.Questions[i]
		if truncateWords(&q.Question, limits.QuestionWordMax) {
			fixed++
		}
		if truncateWords(&q.Explanation, limits.ExplanationWordMax) {
			fixed++
		}
		for j := range q.Options {
			opt := &q.Options[j]
			if truncateWords(&opt.Text, limits.OptionWordMax) {
				fixed++
			}
			if truncateWords(&opt.Rationale, limits.RationaleWordMax) {
				fixed++
			}
		}
	}
	return fixed
}

func truncateWords(text *string, max int) bool {
	words := strings.Fields(*text)
	if len(words) <= max {
		return false
	}
	*text = strings.Join(words[:max], " ")
	return true
}
