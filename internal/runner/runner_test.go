package runner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fwr/quizgen/internal/checkpoint"
	"github.com/fwr/quizgen/internal/quizgen"
)

// stubPipeline returns canned results keyed by unit key. Units not in
// the map fail.
type stubPipeline struct {
	results map[string]*quizgen.UnitResult
	calls   []string
	onCall  func(unit quizgen.Unit)
}

func (s *stubPipeline) Run(_ context.Context, unit quizgen.Unit) (*quizgen.UnitResult, error) {
	s.calls = append(s.calls, unit.Key())
	if s.onCall != nil {
		s.onCall(unit)
	}
	res, ok := s.results[unit.Key()]
	if !ok {
		return nil, errors.New("model exploded")
	}
	return res, nil
}

type memorySink struct {
	saved map[string][]quizgen.Question
	err   error
}

func newMemorySink() *memorySink {
	return &memorySink{saved: make(map[string][]quizgen.Question)}
}

func (s *memorySink) SavePool(unit quizgen.Unit, questions []quizgen.Question) error {
	if s.err != nil {
		return s.err
	}
	s.saved[unit.Key()] = questions
	return nil
}

func openCheckpoint(t *testing.T) *checkpoint.File {
	t.Helper()
	f, err := checkpoint.Open(filepath.Join(t.TempDir(), "checkpoint.json"))
	if err != nil {
		t.Fatalf("open checkpoint: %v", err)
	}
	return f
}

func okResult(unit quizgen.Unit, n int) *quizgen.UnitResult {
	questions := make([]quizgen.Question, n)
	for i := range questions {
		questions[i] = quizgen.Question{ID: i + 1, Question: "q"}
	}
	return &quizgen.UnitResult{Unit: unit, Questions: questions, Selected: n}
}

func testUnits() []quizgen.Unit {
	return []quizgen.Unit{
		{Sector: "finance", Career: "auditor", Level: 1},
		{Sector: "finance", Career: "auditor", Level: 2},
		{Sector: "finance", Career: "auditor", Level: 3},
	}
}

func TestRunUnits_AllSucceed(t *testing.T) {
	units := testUnits()
	pipeline := &stubPipeline{results: map[string]*quizgen.UnitResult{}}
	for _, u := range units {
		pipeline.results[u.Key()] = okResult(u, 20)
	}
	sink := newMemorySink()
	cp := openCheckpoint(t)
	r := New(pipeline, cp, sink, nil)

	result, err := r.RunUnits(context.Background(), units, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Succeeded != 3 || result.Failed != 0 || result.Skipped != 0 {
		t.Errorf("succeeded/failed/skipped = %d/%d/%d", result.Succeeded, result.Failed, result.Skipped)
	}
	if result.Questions != 60 {
		t.Errorf("questions = %d, want 60", result.Questions)
	}
	for _, u := range units {
		if !cp.Done(u.Key()) {
			t.Errorf("unit %s not checkpointed", u.Key())
		}
		if len(sink.saved[u.Key()]) != 20 {
			t.Errorf("unit %s not saved", u.Key())
		}
	}
}

func TestRunUnits_SkipsCheckpointedUnits(t *testing.T) {
	units := testUnits()
	cp := openCheckpoint(t)
	if err := cp.MarkDone(units[1].Key(), 20); err != nil {
		t.Fatalf("mark done: %v", err)
	}

	pipeline := &stubPipeline{results: map[string]*quizgen.UnitResult{
		units[0].Key(): okResult(units[0], 20),
		units[2].Key(): okResult(units[2], 20),
	}}
	r := New(pipeline, cp, newMemorySink(), nil)

	result, err := r.RunUnits(context.Background(), units, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Skipped != 1 || result.Succeeded != 2 {
		t.Errorf("skipped/succeeded = %d/%d", result.Skipped, result.Succeeded)
	}
	if len(pipeline.calls) != 2 {
		t.Errorf("pipeline ran %d units, want 2", len(pipeline.calls))
	}
	for _, key := range pipeline.calls {
		if key == units[1].Key() {
			t.Error("checkpointed unit was regenerated")
		}
	}
}

func TestRunUnits_FailureDoesNotStopRun(t *testing.T) {
	units := testUnits()
	pipeline := &stubPipeline{results: map[string]*quizgen.UnitResult{
		units[0].Key(): okResult(units[0], 20),
		// units[1] missing, so it fails
		units[2].Key(): okResult(units[2], 20),
	}}
	cp := openCheckpoint(t)
	r := New(pipeline, cp, newMemorySink(), nil)

	result, err := r.RunUnits(context.Background(), units, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Succeeded != 2 || result.Failed != 1 {
		t.Errorf("succeeded/failed = %d/%d", result.Succeeded, result.Failed)
	}
	if cp.Done(units[1].Key()) {
		t.Error("failed unit was checkpointed")
	}
	if len(pipeline.calls) != 3 {
		t.Errorf("pipeline ran %d units, want all 3", len(pipeline.calls))
	}
	failed := result.Units[1]
	if failed.Status != UnitFailed || failed.Err == nil {
		t.Errorf("outcome = %+v", failed)
	}
}

func TestRunUnits_SinkErrorFailsUnit(t *testing.T) {
	units := testUnits()[:1]
	pipeline := &stubPipeline{results: map[string]*quizgen.UnitResult{
		units[0].Key(): okResult(units[0], 20),
	}}
	sink := newMemorySink()
	sink.err = errors.New("disk full")
	cp := openCheckpoint(t)
	r := New(pipeline, cp, sink, nil)

	result, err := r.RunUnits(context.Background(), units, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if cp.Done(units[0].Key()) {
		t.Error("unit checkpointed despite save failure")
	}
	var stageErr *quizgen.StageError
	if !errors.As(result.Units[0].Err, &stageErr) || stageErr.Stage != "save" {
		t.Errorf("expected save stage error, got %v", result.Units[0].Err)
	}
}

func TestRunUnits_CancelBetweenUnits(t *testing.T) {
	units := testUnits()
	cancel := &CancelFlag{}
	pipeline := &stubPipeline{results: map[string]*quizgen.UnitResult{}}
	for _, u := range units {
		pipeline.results[u.Key()] = okResult(u, 20)
	}
	// cancel during the first unit; it should finish, the rest should not run
	pipeline.onCall = func(quizgen.Unit) { cancel.Cancel() }
	cp := openCheckpoint(t)
	r := New(pipeline, cp, newMemorySink(), nil)

	result, err := r.RunUnits(context.Background(), units, cancel, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Cancelled {
		t.Error("expected cancelled flag")
	}
	if result.Succeeded != 1 {
		t.Errorf("succeeded = %d, want 1", result.Succeeded)
	}
	if len(pipeline.calls) != 1 {
		t.Errorf("pipeline ran %d units after cancel, want 1", len(pipeline.calls))
	}
	if !cp.Done(units[0].Key()) {
		t.Error("in-flight unit not checkpointed before stop")
	}
}

func TestRunUnits_ContextCancelStopsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pipeline := &stubPipeline{results: map[string]*quizgen.UnitResult{}}
	r := New(pipeline, openCheckpoint(t), newMemorySink(), nil)

	result, err := r.RunUnits(ctx, testUnits(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Cancelled {
		t.Error("expected cancelled flag")
	}
	if len(pipeline.calls) != 0 {
		t.Errorf("pipeline ran %d units on a dead context", len(pipeline.calls))
	}
}

func TestRunSector_UnknownSector(t *testing.T) {
	r := New(&stubPipeline{}, nil, newMemorySink(), nil)
	if _, err := r.RunSector(context.Background(), "agriculture", nil, nil); err == nil {
		t.Fatal("expected error for unknown sector")
	}
}

// progressRecorder captures reporter callbacks in order.
type progressRecorder struct {
	started  []string
	finished []UnitOutcome
}

func (p *progressRecorder) UnitStarted(unit quizgen.Unit, _, _ int) {
	p.started = append(p.started, unit.Key())
}

func (p *progressRecorder) UnitFinished(outcome UnitOutcome, _, _ int) {
	p.finished = append(p.finished, outcome)
}

func TestRunUnits_ReporterSeesSkipsAndRuns(t *testing.T) {
	units := testUnits()
	cp := openCheckpoint(t)
	if err := cp.MarkDone(units[0].Key(), 20); err != nil {
		t.Fatalf("mark done: %v", err)
	}
	pipeline := &stubPipeline{results: map[string]*quizgen.UnitResult{
		units[1].Key(): okResult(units[1], 20),
		units[2].Key(): okResult(units[2], 20),
	}}
	rec := &progressRecorder{}
	r := New(pipeline, cp, newMemorySink(), nil)

	if _, err := r.RunUnits(context.Background(), units, nil, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.started) != 2 {
		t.Errorf("started events = %d, want 2 (skips do not start)", len(rec.started))
	}
	if len(rec.finished) != 3 {
		t.Errorf("finished events = %d, want 3", len(rec.finished))
	}
	if rec.finished[0].Status != UnitSkipped {
		t.Errorf("first outcome = %s, want skipped", rec.finished[0].Status)
	}
}
