package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
)

// Generator drafts the raw question pool for a unit. Model and
// temperature follow the unit's difficulty tier; the soft-skills unit
// has its own model settings.
type Generator struct {
	caller *Caller
	cfg    Config
}

func NewGenerator(caller *Caller, cfg Config) *Generator {
	return &Generator{caller: caller, cfg: cfg}
}

// GeneratePool runs the generator call for a unit and returns the
// recovered JSON object, unvalidated.
func (g *Generator) GeneratePool(ctx context.Context, unit Unit) (json.RawMessage, error) {
	spec := g.callSpec(unit)
	raw, err := g.caller.CallJSON(ctx, spec)
	if err != nil {
		return nil, &StageError{Stage: "generator", Unit: unit, Err: err}
	}
	return raw, nil
}

func (g *Generator) callSpec(unit Unit) CallSpec {
	if unit.SoftSkills {
		return CallSpec{
			Model:       g.cfg.SoftSkillsModel,
			System:      SoftSkillsSystemPrompt(g.cfg),
			User:        SoftSkillsUserPrompt(g.cfg),
			Temperature: g.cfg.SoftSkillsTemperature,
			Label:       "generator:soft_skills",
			Attempts:    g.cfg.CallAttempts,
		}
	}

	tier := g.cfg.TierForLevel(unit.Level)
	rc := ContextFor(unit.Sector, unit.Career)
	return CallSpec{
		Model:       tier.Model,
		System:      GeneratorSystemPrompt(unit, rc, g.cfg),
		User:        GeneratorUserPrompt(unit, g.cfg),
		Temperature: tier.Temperature,
		Label:       fmt.Sprintf("generator:%s", unit.Key()),
		Attempts:    g.cfg.CallAttempts,
	}
}
