package quizgen

import "math/rand"

// Select shuffles the deduplicated questions and keeps at most target
// of them, renumbering IDs 1..k so saved pools always have contiguous
// IDs. The second return value is true when fewer than target questions
// were available.
func Select(questions []Question, target int, rng *rand.Rand) ([]Question, bool) {
	out := make([]Question, len(questions))
	copy(out, questions)

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	under := len(out) < target
	if len(out) > target {
		out = out[:target]
	}
	for i := range out {
		out[i].ID = i + 1
	}
	return out, under
}
