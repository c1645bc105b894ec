// Package server exposes the generation pipeline over HTTP: job
// creation and tracking, checkpoint inspection, and the sector listing.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fwr/quizgen/internal/checkpoint"
	"github.com/fwr/quizgen/internal/jobs"
	"github.com/fwr/quizgen/internal/quizgen"
	"github.com/fwr/quizgen/internal/runner"
)

// Server wires the runner, job tracker and checkpoint into an HTTP API.
// Generation jobs run one at a time on a background goroutine.
type Server struct {
	runner      *runner.Runner
	tracker     jobs.Tracker
	checkpoints *checkpoint.File
	log         *zap.SugaredLogger

	mu      sync.Mutex
	running bool
	cancels map[uuid.UUID]*runner.CancelFlag
}

func New(r *runner.Runner, tracker jobs.Tracker, checkpoints *checkpoint.File, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		runner:      r,
		tracker:     tracker,
		checkpoints: checkpoints,
		log:         log,
		cancels:     make(map[uuid.UUID]*runner.CancelFlag),
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/generation").Subrouter()
	api.HandleFunc("/jobs", s.handleCreateJob).Methods(http.MethodPost)
	api.HandleFunc("/jobs", s.handleListJobs).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id}", s.handleGetJob).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id}/cancel", s.handleCancelJob).Methods(http.MethodPost)
	api.HandleFunc("/checkpoint", s.handleCheckpoint).Methods(http.MethodGet)
	api.HandleFunc("/sectors", s.handleSectors).Methods(http.MethodGet)
	return r
}

// ListenAndServe runs the HTTP server until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// unitsForJob expands a job's scope into its work items.
func unitsForJob(jobType jobs.Type, params jobs.Parameters) ([]quizgen.Unit, error) {
	switch jobType {
	case jobs.TypeFull:
		return quizgen.AllUnits(), nil
	case jobs.TypeSector:
		if !quizgen.ValidSector(params.Sector) {
			return nil, fmt.Errorf("unknown sector %q", params.Sector)
		}
		return quizgen.UnitsForSector(params.Sector), nil
	case jobs.TypeCareerLevel:
		if !quizgen.ValidCareer(params.Sector, params.Career) {
			return nil, fmt.Errorf("unknown career %q in sector %q", params.Career, params.Sector)
		}
		if params.Level != 0 {
			if params.Level < quizgen.MinLevel || params.Level > quizgen.MaxLevel {
				return nil, fmt.Errorf("level must be %d-%d", quizgen.MinLevel, quizgen.MaxLevel)
			}
			return []quizgen.Unit{{Sector: params.Sector, Career: params.Career, Level: params.Level}}, nil
		}
		return quizgen.UnitsForCareer(params.Sector, params.Career)
	case jobs.TypeSoftSkills:
		return []quizgen.Unit{{SoftSkills: true}}, nil
	}
	return nil, fmt.Errorf("invalid job type %q", jobType)
}

// launch starts the background run for a created job. It returns false
// when another job is already running.
func (s *Server) launch(job *jobs.Job, units []quizgen.Unit) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true

	flag := &runner.CancelFlag{}
	s.cancels[job.ID] = flag

	go s.run(job, units, flag)
	return true
}

func (s *Server) run(job *jobs.Job, units []quizgen.Unit, flag *runner.CancelFlag) {
	ctx := context.Background()

	defer func() {
		s.mu.Lock()
		s.running = false
		delete(s.cancels, job.ID)
		s.mu.Unlock()
	}()

	running := jobs.StatusRunning
	total := len(units)
	if _, err := s.tracker.Update(ctx, job.ID, jobs.Update{
		Status:     &running,
		UnitsTotal: &total,
	}); err != nil {
		s.log.Errorw("failed to mark job running", "job", job.ID, "error", err)
		return
	}

	rep := &trackerReporter{tracker: s.tracker, jobID: job.ID, log: s.log}
	result, err := s.runner.RunUnits(ctx, units, flag, rep)

	final := jobs.StatusCompleted
	summary := &jobs.Summary{}
	switch {
	case err != nil:
		final = jobs.StatusFailed
		summary.Error = err.Error()
	case result.Cancelled:
		final = jobs.StatusCancelled
	case result.Failed > 0 && result.Succeeded == 0:
		final = jobs.StatusFailed
	}
	if result != nil {
		summary.Succeeded = result.Succeeded
		summary.Skipped = result.Skipped
		summary.Failed = result.Failed
		summary.Questions = result.Questions
	}

	empty := ""
	if _, err := s.tracker.Update(ctx, job.ID, jobs.Update{
		Status:      &final,
		Summary:     summary,
		CurrentUnit: &empty,
	}); err != nil {
		s.log.Errorw("failed to finalize job", "job", job.ID, "error", err)
	}
	s.log.Infow("job finished", "job", job.ID, "status", final,
		"succeeded", summary.Succeeded, "skipped", summary.Skipped, "failed", summary.Failed)
}

// trackerReporter mirrors run progress into the job tracker.
type trackerReporter struct {
	tracker jobs.Tracker
	jobID   uuid.UUID
	log     *zap.SugaredLogger
}

func (r *trackerReporter) UnitStarted(unit quizgen.Unit, done, total int) {
	key := unit.Key()
	if _, err := r.tracker.Update(context.Background(), r.jobID, jobs.Update{
		CurrentUnit: &key,
	}); err != nil {
		r.log.Warnw("failed to record current unit", "job", r.jobID, "error", err)
	}
}

func (r *trackerReporter) UnitFinished(outcome runner.UnitOutcome, done, total int) {
	if _, err := r.tracker.Update(context.Background(), r.jobID, jobs.Update{
		UnitsDone: &done,
	}); err != nil {
		r.log.Warnw("failed to record unit progress", "job", r.jobID, "error", err)
	}
}
