// Package export writes validated pools to disk and transforms them
// into the production quiz schema consumed by the assessment platform.
package export

// DifficultyMeta carries the fixed assessment rules for one level.
type DifficultyMeta struct {
	TimeLimitMinutes int     `json:"time_limit_minutes"`
	PassingScore     float64 `json:"passing_score"`
}

var difficultyMetadata = map[int]DifficultyMeta{
	1: {TimeLimitMinutes: 30, PassingScore: 70.0},
	2: {TimeLimitMinutes: 40, PassingScore: 70.0},
	3: {TimeLimitMinutes: 50, PassingScore: 75.0},
	4: {TimeLimitMinutes: 50, PassingScore: 75.0},
	5: {TimeLimitMinutes: 60, PassingScore: 80.0},
}

// MetaForLevel returns the time limit and passing score for a level.
// Unknown levels fall back to the level-1 rules.
func MetaForLevel(level int) DifficultyMeta {
	if meta, ok := difficultyMetadata[level]; ok {
		return meta
	}
	return difficultyMetadata[1]
}
