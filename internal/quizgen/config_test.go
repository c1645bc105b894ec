package quizgen

import "testing"

func TestTierForLevel(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		level     int
		wantModel string
		wantTemp  float32
	}{
		{1, "gemini-flash", 0.6},
		{2, "gemini-flash", 0.6},
		{3, "gemini-pro", 0.4},
		{4, "gemini-pro", 0.4},
		{5, "gemini-pro", 0.4},
		{9, "gemini-pro", 0.4}, // beyond the table falls back to the last tier
	}
	for _, tt := range tests {
		tier := cfg.TierForLevel(tt.level)
		if tier.Model != tt.wantModel {
			t.Errorf("level %d: model %q, want %q", tt.level, tier.Model, tt.wantModel)
		}
		if tier.Temperature != tt.wantTemp {
			t.Errorf("level %d: temperature %v, want %v", tt.level, tier.Temperature, tt.wantTemp)
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PoolSize != 20 {
		t.Errorf("PoolSize = %d, want 20", cfg.PoolSize)
	}
	if cfg.SaveCount != 20 {
		t.Errorf("SaveCount = %d, want 20", cfg.SaveCount)
	}
	if cfg.SoftSkillsCount != 20 {
		t.Errorf("SoftSkillsCount = %d, want 20", cfg.SoftSkillsCount)
	}
	if cfg.CriticModel != "gemini-pro" || cfg.CriticTemperature != 0.3 {
		t.Errorf("critic settings = %s/%v", cfg.CriticModel, cfg.CriticTemperature)
	}
	if cfg.CallAttempts != 2 || cfg.CriticAttempts != 2 {
		t.Errorf("attempts = %d/%d, want 2/2", cfg.CallAttempts, cfg.CriticAttempts)
	}
}

func TestDefaultLimits_Values(t *testing.T) {
	l := DefaultLimits()
	if l.QuestionWordMin != 12 || l.QuestionWordMax != 28 {
		t.Errorf("question bounds %d-%d", l.QuestionWordMin, l.QuestionWordMax)
	}
	if l.OptionWordMin != 10 || l.OptionWordMax != 24 {
		t.Errorf("option bounds %d-%d", l.OptionWordMin, l.OptionWordMax)
	}
	if l.RationaleWordMax != 30 {
		t.Errorf("rationale max %d", l.RationaleWordMax)
	}
	if l.ExplanationWordMin != 15 || l.ExplanationWordMax != 50 {
		t.Errorf("explanation bounds %d-%d", l.ExplanationWordMin, l.ExplanationWordMax)
	}
}
