package quizgen

// Limits are the word-count bounds enforced on generated content.
type Limits struct {
	QuestionWordMin    int
	QuestionWordMax    int
	OptionWordMin      int
	OptionWordMax      int
	RationaleWordMax   int
	ExplanationWordMin int
	ExplanationWordMax int
}

// DefaultLimits returns the production word-count bounds.
func DefaultLimits() Limits {
	return Limits{
		QuestionWordMin:    12,
		QuestionWordMax:    28,
		OptionWordMin:      10,
		OptionWordMax:      24,
		RationaleWordMax:   30,
		ExplanationWordMin: 15,
		ExplanationWordMax: 50,
	}
}

// ModelTier selects a generator model by difficulty level. Levels up to
// and including MaxLevel use the tier.
type ModelTier struct {
	MaxLevel    int
	Model       string
	Temperature float32
}

// Config holds the tunables of the generation pipeline.
type Config struct {
	Limits Limits

	// PoolSize is how many questions the generator is asked for per unit.
	PoolSize int
	// SaveCount is how many validated questions are selected for saving.
	SaveCount int
	// SoftSkillsCount is the pool size for the career-agnostic unit.
	SoftSkillsCount int

	// Tiers map difficulty levels to generator models, ordered by MaxLevel.
	Tiers []ModelTier

	CriticModel       string
	CriticTemperature float32

	SoftSkillsModel       string
	SoftSkillsTemperature float32

	// CallAttempts is how many generator attempts a unit gets before failing.
	CallAttempts int
	// CriticAttempts is how many critic repairs each failed pool gets.
	CriticAttempts int
}

// DefaultConfig returns the production pipeline configuration.
// Levels 1-2 use the faster flash model at a higher temperature; levels
// 3-5 use the pro model with tighter sampling. The critic always runs
// on the pro model at the lowest temperature.
func DefaultConfig() Config {
	return Config{
		Limits:          DefaultLimits(),
		PoolSize:        20,
		SaveCount:       20,
		SoftSkillsCount: 20,
		Tiers: []ModelTier{
			{MaxLevel: 2, Model: "gemini-flash", Temperature: 0.6},
			{MaxLevel: 5, Model: "gemini-pro", Temperature: 0.4},
		},
		CriticModel:           "gemini-pro",
		CriticTemperature:     0.3,
		SoftSkillsModel:       "gemini-flash",
		SoftSkillsTemperature: 0.5,
		CallAttempts:          2,
		CriticAttempts:        2,
	}
}

// TierForLevel returns the model tier for a difficulty level. Levels
// beyond the last tier fall back to the last tier.
func (c Config) TierForLevel(level int) ModelTier {
	for _, t := range c.Tiers {
		if level <= t.MaxLevel {
			return t
		}
	}
	if len(c.Tiers) > 0 {
		return c.Tiers[len(c.Tiers)-1]
	}
	return ModelTier{}
}
