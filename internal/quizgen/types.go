// Package quizgen implements the two-stage quiz content pipeline:
// a generator model drafts a pool of multiple-choice questions for a
// career/level unit, and a critic model reviews and corrects the pool
// before it is validated, deduplicated and selected for saving.
package quizgen

import "fmt"

// Option is one answer choice within a question. Keys run A through E.
type Option struct {
	Key       string `json:"key"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Rationale string `json:"rationale"`
}

// Question is a single multiple-choice question with exactly five options.
type Question struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Explanation string   `json:"explanation"`
	Options     []Option `json:"options"`
}

// CorrectOption returns the option marked correct, or nil if the
// question has none or more than one.
func (q Question) CorrectOption() *Option {
	var found *Option
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			if found != nil {
				return nil
			}
			found = &q.Options[i]
		}
	}
	return found
}

// Pool is the wire shape both models produce and consume.
type Pool struct {
	Questions []Question `json:"quiz_pool"`
}

// Unit identifies one generation work item. A regular unit is a
// sector/career/level triple; the soft-skills unit is career-agnostic
// and has SoftSkills set with the other fields empty.
type Unit struct {
	Sector     string
	Career     string
	Level      int
	SoftSkills bool
}

// Key returns the stable checkpoint key for the unit.
func (u Unit) Key() string {
	if u.SoftSkills {
		return "soft_skills"
	}
	return fmt.Sprintf("%s_%s_lvl%d", u.Sector, u.Career, u.Level)
}

func (u Unit) String() string {
	if u.SoftSkills {
		return "soft skills"
	}
	return fmt.Sprintf("%s / %s / level %d", u.Sector, u.Career, u.Level)
}
