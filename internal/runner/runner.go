// Package runner drives the generation pipeline across units, honoring
// checkpoints and cooperative cancellation.
package runner

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/fwr/quizgen/internal/checkpoint"
	"github.com/fwr/quizgen/internal/quizgen"
)

// Sink receives validated, selected question pools.
type Sink interface {
	SavePool(unit quizgen.Unit, questions []quizgen.Question) error
}

// UnitRunner produces the result for a single unit. *quizgen.Pipeline
// is the production implementation.
type UnitRunner interface {
	Run(ctx context.Context, unit quizgen.Unit) (*quizgen.UnitResult, error)
}

// Reporter observes run progress. Implementations must be safe to call
// from the run goroutine.
type Reporter interface {
	UnitStarted(unit quizgen.Unit, done, total int)
	UnitFinished(outcome UnitOutcome, done, total int)
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) UnitStarted(quizgen.Unit, int, int) {}
func (NopReporter) UnitFinished(UnitOutcome, int, int) {}

// CancelFlag requests a cooperative stop. The runner checks it between
// units only; an in-flight unit always finishes.
type CancelFlag struct {
	flag atomic.Bool
}

func (c *CancelFlag) Cancel()         { c.flag.Store(true) }
func (c *CancelFlag) Cancelled() bool { return c.flag.Load() }

// UnitStatus is the outcome class of one unit.
type UnitStatus string

const (
	UnitCompleted UnitStatus = "completed"
	UnitSkipped   UnitStatus = "skipped"
	UnitFailed    UnitStatus = "failed"
)

// UnitOutcome records how one unit fared.
type UnitOutcome struct {
	Unit        quizgen.Unit
	Status      UnitStatus
	Questions   int
	Repaired    bool
	UnderTarget bool
	Err         error
}

// RunResult aggregates a whole run.
type RunResult struct {
	Units     []UnitOutcome
	Succeeded int
	Skipped   int
	Failed    int
	Questions int
	// Cancelled is set when the run stopped early via the cancel flag
	// or context; remaining units were not attempted.
	Cancelled bool
}

// Runner executes units through the pipeline, skipping checkpointed
// ones and persisting each success before marking it done.
type Runner struct {
	pipeline    UnitRunner
	checkpoints *checkpoint.File
	sink        Sink
	log         *zap.SugaredLogger
}

func New(pipeline UnitRunner, checkpoints *checkpoint.File, sink Sink, log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{pipeline: pipeline, checkpoints: checkpoints, sink: sink, log: log}
}

// RunAll processes the full sector×career×level matrix plus the
// soft-skills unit.
func (r *Runner) RunAll(ctx context.Context, cancel *CancelFlag, rep Reporter) (*RunResult, error) {
	return r.RunUnits(ctx, quizgen.AllUnits(), cancel, rep)
}

// RunSector processes every unit of one sector.
func (r *Runner) RunSector(ctx context.Context, sector string, cancel *CancelFlag, rep Reporter) (*RunResult, error) {
	if !quizgen.ValidSector(sector) {
		return nil, fmt.Errorf("unknown sector %q", sector)
	}
	return r.RunUnits(ctx, quizgen.UnitsForSector(sector), cancel, rep)
}

// RunCareer processes all five levels of one career.
func (r *Runner) RunCareer(ctx context.Context, sector, career string, cancel *CancelFlag, rep Reporter) (*RunResult, error) {
	units, err := quizgen.UnitsForCareer(sector, career)
	if err != nil {
		return nil, err
	}
	return r.RunUnits(ctx, units, cancel, rep)
}

// RunUnits processes the given units in order. A failed unit is
// recorded and the run moves on; only cancellation stops the run early.
func (r *Runner) RunUnits(ctx context.Context, units []quizgen.Unit, cancel *CancelFlag, rep Reporter) (*RunResult, error) {
	if rep == nil {
		rep = NopReporter{}
	}

	result := &RunResult{}
	total := len(units)

	for i, unit := range units {
		if ctx.Err() != nil || (cancel != nil && cancel.Cancelled()) {
			result.Cancelled = true
			r.log.Infow("run cancelled", "completed", i, "total", total)
			break
		}

		if r.checkpoints != nil && r.checkpoints.Done(unit.Key()) {
			outcome := UnitOutcome{Unit: unit, Status: UnitSkipped}
			result.Units = append(result.Units, outcome)
			result.Skipped++
			rep.UnitFinished(outcome, i+1, total)
			continue
		}

		rep.UnitStarted(unit, i, total)
		outcome := r.runOne(ctx, unit)
		result.Units = append(result.Units, outcome)

		switch outcome.Status {
		case UnitCompleted:
			result.Succeeded++
			result.Questions += outcome.Questions
		case UnitFailed:
			result.Failed++
		}
		rep.UnitFinished(outcome, i+1, total)
	}

	return result, nil
}

func (r *Runner) runOne(ctx context.Context, unit quizgen.Unit) UnitOutcome {
	r.log.Infow("generating unit", "unit", unit.Key())

	res, err := r.pipeline.Run(ctx, unit)
	if err != nil {
		r.log.Errorw("unit failed", "unit", unit.Key(), "error", err)
		return UnitOutcome{Unit: unit, Status: UnitFailed, Err: err}
	}

	if err := r.sink.SavePool(unit, res.Questions); err != nil {
		err = &quizgen.StageError{Stage: "save", Unit: unit, Err: err}
		r.log.Errorw("saving pool failed", "unit", unit.Key(), "error", err)
		return UnitOutcome{Unit: unit, Status: UnitFailed, Err: err}
	}

	// Mark done only after the pool is saved. A crash between save and
	// mark regenerates the unit, which is safe; the reverse would lose it.
	if r.checkpoints != nil {
		if err := r.checkpoints.MarkDone(unit.Key(), len(res.Questions)); err != nil {
			r.log.Errorw("checkpoint write failed", "unit", unit.Key(), "error", err)
			return UnitOutcome{Unit: unit, Status: UnitFailed, Err: err}
		}
	}

	r.log.Infow("unit complete",
		"unit", unit.Key(),
		"generated", res.Generated,
		"unique", res.Unique,
		"selected", res.Selected,
		"repaired", res.Repaired)

	return UnitOutcome{
		Unit:        unit,
		Status:      UnitCompleted,
		Questions:   res.Selected,
		Repaired:    res.Repaired,
		UnderTarget: res.UnderTarget,
	}
}
