package quizgen

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// UnitResult summarizes one unit's trip through the pipeline.
type UnitResult struct {
	Unit      Unit
	Questions []Question

	// Generated is the pool size after decoding, Unique after
	// deduplication, Selected the final count saved.
	Generated int
	Unique    int
	Selected  int

	// UnderTarget is set when fewer questions than the save target
	// survived validation and deduplication.
	UnderTarget bool

	// Repaired is set when the raw generator output failed validation
	// and the critic review had to fix it. The critic runs either way.
	Repaired bool
}

// Pipeline runs the full generate, critique, validate, dedupe and
// select flow for a single unit.
type Pipeline struct {
	gen    *Generator
	critic *Critic
	cfg    Config
	log    *zap.SugaredLogger
	rng    *rand.Rand
}

// NewPipeline assembles the pipeline. log may be nil; rng may be nil
// for a time-seeded source.
func NewPipeline(gen *Generator, critic *Critic, cfg Config, log *zap.SugaredLogger, rng *rand.Rand) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Pipeline{gen: gen, critic: critic, cfg: cfg, log: log, rng: rng}
}

// Run processes one unit end to end. Every generator pool passes
// through critic review, valid or not; if the critic cannot produce a
// valid pool the unit fails. Raw generator output never proceeds on
// its own.
func (p *Pipeline) Run(ctx context.Context, unit Unit) (*UnitResult, error) {
	raw, err := p.gen.GeneratePool(ctx, unit)
	if err != nil {
		return nil, err
	}

	result := &UnitResult{Unit: unit}

	pool, err := p.reviewed(ctx, unit, raw, result)
	if err != nil {
		return nil, err
	}

	result.Generated = len(pool.Questions)

	unique := Dedupe(pool.Questions)
	result.Unique = len(unique)
	if dropped := result.Generated - result.Unique; dropped > 0 {
		p.log.Infow("dropped duplicate questions", "unit", unit.Key(), "dropped", dropped)
	}

	target := p.cfg.SaveCount
	if unit.SoftSkills {
		target = p.cfg.SoftSkillsCount
	}

	selected, under := Select(unique, target, p.rng)
	result.Questions = selected
	result.Selected = len(selected)
	result.UnderTarget = under
	if under {
		p.log.Warnw("pool under save target",
			"unit", unit.Key(), "selected", result.Selected, "target", target)
	}

	return result, nil
}

// reviewed runs the critic over the raw generator output. The raw
// validation result is informational: it shapes the critic prompt and
// the Repaired flag, but every pool goes through the critic and only
// the critic-validated pool proceeds to selection.
func (p *Pipeline) reviewed(ctx context.Context, unit Unit, raw json.RawMessage, result *UnitResult) (Pool, error) {
	_, verrs, decodeErr := DecodePool(raw, p.cfg.Limits)
	switch {
	case decodeErr != nil:
		p.log.Warnw("generator output failed structural checks",
			"unit", unit.Key(), "error", decodeErr)
	case len(verrs) > 0:
		p.log.Warnw("generator output failed content validation",
			"unit", unit.Key(), "violations", len(verrs))
	}

	pool, err := p.critic.Review(ctx, unit, raw, verrs)
	if err != nil {
		return Pool{}, err
	}
	result.Repaired = decodeErr != nil || len(verrs) > 0
	return pool, nil
}
