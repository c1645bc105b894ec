// Package jobs tracks asynchronous generation jobs: their lifecycle,
// progress, and final summaries.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// rank orders the lifecycle for transition checks. Terminal states
// share a rank; they are frozen outright before ordering applies.
func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusRunning:
		return 1
	}
	return 2
}

// Type is the scope of work a job covers.
type Type string

const (
	TypeFull        Type = "full"
	TypeSector      Type = "sector"
	TypeCareerLevel Type = "career_level"
	TypeSoftSkills  Type = "soft_skills"
)

// Valid reports whether t is a known job type.
func (t Type) Valid() bool {
	switch t {
	case TypeFull, TypeSector, TypeCareerLevel, TypeSoftSkills:
		return true
	}
	return false
}

// Parameters scope a job to part of the matrix. Empty fields mean "all".
type Parameters struct {
	Sector string `json:"sector,omitempty"`
	Career string `json:"career,omitempty"`
	Level  int    `json:"level,omitempty"`
}

// Summary is the final accounting of a finished job.
type Summary struct {
	Succeeded int    `json:"succeeded"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
	Questions int    `json:"questions"`
	Error     string `json:"error,omitempty"`
}

// Job is one tracked generation run.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	Type        Type       `json:"type"`
	Status      Status     `json:"status"`
	Parameters  Parameters `json:"parameters"`
	UnitsTotal  int        `json:"units_total"`
	UnitsDone   int        `json:"units_done"`
	CurrentUnit string     `json:"current_unit,omitempty"`
	Summary     *Summary   `json:"result_summary,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Update carries a partial state change. Nil fields are left untouched.
type Update struct {
	Status      *Status
	UnitsTotal  *int
	UnitsDone   *int
	CurrentUnit *string
	Summary     *Summary
}

var (
	// ErrNotFound is returned when no job has the given ID.
	ErrNotFound = errors.New("job not found")
	// ErrTerminal is returned when updating a job already in a final state.
	ErrTerminal = errors.New("job is in a terminal state")
)

// Tracker stores and updates jobs.
type Tracker interface {
	Create(ctx context.Context, jobType Type, params Parameters) (*Job, error)
	Get(ctx context.Context, id uuid.UUID) (*Job, error)
	List(ctx context.Context, status Status) ([]*Job, error)
	Update(ctx context.Context, id uuid.UUID, update Update) (*Job, error)
}

// Apply mutates job in place according to update, enforcing that
// terminal jobs are frozen, status only moves forward through the
// lifecycle (pending, then running, then a terminal state), and unit
// progress never decreases. Status timestamps are stamped on the first
// transition into running and into any terminal state. Tracker
// implementations share this logic.
func Apply(job *Job, update Update, now time.Time) error {
	if job.Status.Terminal() {
		return fmt.Errorf("%w: %s is %s", ErrTerminal, job.ID, job.Status)
	}

	if update.Status != nil {
		next := *update.Status
		if !next.Valid() {
			return fmt.Errorf("invalid status %q", next)
		}
		if next.rank() < job.Status.rank() {
			return fmt.Errorf("invalid status transition %s -> %s", job.Status, next)
		}
		if next == StatusRunning && job.StartedAt == nil {
			t := now
			job.StartedAt = &t
		}
		if next.Terminal() {
			t := now
			job.CompletedAt = &t
		}
		job.Status = next
	}

	if update.UnitsTotal != nil {
		job.UnitsTotal = *update.UnitsTotal
	}
	if update.UnitsDone != nil {
		if *update.UnitsDone < job.UnitsDone {
			return fmt.Errorf("units_done cannot decrease: %d < %d", *update.UnitsDone, job.UnitsDone)
		}
		job.UnitsDone = *update.UnitsDone
	}
	if update.CurrentUnit != nil {
		job.CurrentUnit = *update.CurrentUnit
	}
	if update.Summary != nil {
		job.Summary = update.Summary
	}
	return nil
}
