package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func statusPtr(s Status) *Status { return &s }
func intPtr(n int) *int          { return &n }
func strPtr(s string) *string    { return &s }

func TestMemoryTracker_CreateStartsPending(t *testing.T) {
	tracker := NewMemoryTracker()

	job, err := tracker.Create(context.Background(), TypeSector, Parameters{Sector: "finance"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Status != StatusPending {
		t.Errorf("status = %s, want pending", job.Status)
	}
	if job.ID == uuid.Nil {
		t.Error("job has no ID")
	}
	if job.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
	if job.StartedAt != nil || job.CompletedAt != nil {
		t.Error("timestamps set before any transition")
	}

	got, err := tracker.Get(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Parameters.Sector != "finance" {
		t.Errorf("parameters = %+v", got.Parameters)
	}
}

func TestMemoryTracker_GetUnknownID(t *testing.T) {
	tracker := NewMemoryTracker()

	if _, err := tracker.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryTracker_RunningStampsStartedOnce(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()
	job, _ := tracker.Create(ctx, TypeFull, Parameters{})

	running, err := tracker.Update(ctx, job.ID, Update{Status: statusPtr(StatusRunning)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if running.StartedAt == nil {
		t.Fatal("started_at not stamped")
	}
	first := *running.StartedAt

	time.Sleep(5 * time.Millisecond)
	again, err := tracker.Update(ctx, job.ID, Update{Status: statusPtr(StatusRunning)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !again.StartedAt.Equal(first) {
		t.Error("started_at changed on a repeat running transition")
	}
}

func TestMemoryTracker_TerminalFreezesJob(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()
	job, _ := tracker.Create(ctx, TypeSoftSkills, Parameters{})

	done, err := tracker.Update(ctx, job.ID, Update{
		Status:  statusPtr(StatusCompleted),
		Summary: &Summary{Succeeded: 1, Questions: 20},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if done.CompletedAt == nil {
		t.Error("completed_at not stamped")
	}
	if done.Summary == nil || done.Summary.Questions != 20 {
		t.Errorf("summary = %+v", done.Summary)
	}

	if _, err := tracker.Update(ctx, job.ID, Update{Status: statusPtr(StatusFailed)}); !errors.Is(err, ErrTerminal) {
		t.Fatalf("expected ErrTerminal, got %v", err)
	}
	if _, err := tracker.Update(ctx, job.ID, Update{UnitsDone: intPtr(5)}); !errors.Is(err, ErrTerminal) {
		t.Fatalf("expected ErrTerminal for progress update, got %v", err)
	}
}

func TestMemoryTracker_RejectsBackwardTransition(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()
	job, _ := tracker.Create(ctx, TypeFull, Parameters{})

	if _, err := tracker.Update(ctx, job.ID, Update{Status: statusPtr(StatusRunning)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := tracker.Update(ctx, job.ID, Update{Status: statusPtr(StatusPending)}); err == nil {
		t.Fatal("expected error for running -> pending")
	}

	got, _ := tracker.Get(ctx, job.ID)
	if got.Status != StatusRunning {
		t.Errorf("status = %s, want running", got.Status)
	}
	if got.StartedAt == nil {
		t.Error("started_at lost on rejected transition")
	}
}

func TestMemoryTracker_UnitsDoneMonotonic(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()
	job, _ := tracker.Create(ctx, TypeCareerLevel, Parameters{Sector: "finance", Career: "auditor", Level: 2})

	if _, err := tracker.Update(ctx, job.ID, Update{UnitsDone: intPtr(3), CurrentUnit: strPtr("finance_auditor_lvl2")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := tracker.Update(ctx, job.ID, Update{UnitsDone: intPtr(2)}); err == nil {
		t.Fatal("expected error for decreasing units_done")
	}

	got, _ := tracker.Get(ctx, job.ID)
	if got.UnitsDone != 3 {
		t.Errorf("units_done = %d, want 3", got.UnitsDone)
	}
}

func TestMemoryTracker_ListFiltersAndSorts(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	first, _ := tracker.Create(ctx, TypeFull, Parameters{})
	time.Sleep(2 * time.Millisecond)
	second, _ := tracker.Create(ctx, TypeSector, Parameters{Sector: "education"})
	if _, err := tracker.Update(ctx, second.ID, Update{Status: statusPtr(StatusRunning)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := tracker.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(all))
	}
	if all[0].ID != second.ID {
		t.Error("expected newest job first")
	}

	running, err := tracker.List(ctx, StatusRunning)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(running) != 1 || running[0].ID != second.ID {
		t.Errorf("running filter returned %d jobs", len(running))
	}

	pending, _ := tracker.List(ctx, StatusPending)
	if len(pending) != 1 || pending[0].ID != first.ID {
		t.Errorf("pending filter returned %d jobs", len(pending))
	}
}

func TestMemoryTracker_GetReturnsCopy(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()
	job, _ := tracker.Create(ctx, TypeFull, Parameters{})

	got, _ := tracker.Get(ctx, job.ID)
	got.Status = StatusFailed
	got.UnitsDone = 99

	fresh, _ := tracker.Get(ctx, job.ID)
	if fresh.Status != StatusPending || fresh.UnitsDone != 0 {
		t.Error("mutating a returned job leaked into the tracker")
	}
}

func TestApply_InvalidStatusRejected(t *testing.T) {
	job := &Job{ID: uuid.New(), Status: StatusPending}
	bad := Status("exploded")

	if err := Apply(job, Update{Status: &bad}, time.Now()); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if job.Status != StatusPending {
		t.Error("job status changed on rejected update")
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusFailed, StatusCancelled} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusRunning} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
