package quizgen

import (
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// NormalizeQuestion canonicalizes question text for duplicate detection:
// lowercase with runs of whitespace collapsed to single spaces.
func NormalizeQuestion(text string) string {
	return whitespaceRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// Dedupe removes questions whose normalized text already appeared,
// keeping the first occurrence. Order is otherwise preserved.
func Dedupe(questions []Question) []Question {
	seen := make(map[string]struct{}, len(questions))
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		key := NormalizeQuestion(q.Question)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}
