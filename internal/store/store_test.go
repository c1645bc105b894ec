package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fwr/quizgen/internal/jobs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEventRepo_AppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-flash", Label: "generator:finance_auditor_lvl1:attempt1",
			InputTokens: 1200, OutputTokens: 3400, LatencyMs: 8500, Success: true},
		{Provider: "gemini", Model: "gemini-pro", Label: "critic:finance_auditor_lvl1:attempt1",
			InputTokens: 2000, OutputTokens: 3100, LatencyMs: 12000, Success: true},
		{Provider: "gemini", Model: "gemini-flash", Label: "generator:soft_skills:attempt1",
			LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.ListLLMRequests(ctx, EventQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	failed, err := repo.ListLLMRequests(ctx, EventQuery{OnlyFailed: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ErrorMessage != "rate limited" {
		t.Errorf("failed filter returned %d events", len(failed))
	}

	byLabel, err := repo.ListLLMRequests(ctx, EventQuery{Label: "generator:soft_skills:attempt1"})
	if err != nil {
		t.Fatalf("list by label: %v", err)
	}
	if len(byLabel) != 1 || byLabel[0].Provider != "gemini" {
		t.Errorf("label filter returned %d events", len(byLabel))
	}

	limited, err := repo.ListLLMRequests(ctx, EventQuery{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit returned %d events", len(limited))
	}
}

func TestEventRepo_FromFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Label: "generator:x", Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	future, err := repo.ListLLMRequests(ctx, EventQuery{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(future) != 0 {
		t.Errorf("expected no events from the future, got %d", len(future))
	}

	past, err := repo.ListLLMRequests(ctx, EventQuery{From: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(past) != 1 {
		t.Errorf("expected 1 event, got %d", len(past))
	}
}

func TestJobTracker_Lifecycle(t *testing.T) {
	s := openTestStore(t)
	tracker := s.JobTracker()
	ctx := context.Background()

	job, err := tracker.Create(ctx, jobs.TypeSector, jobs.Parameters{Sector: "finance"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Status != jobs.StatusPending {
		t.Errorf("status = %s, want pending", job.Status)
	}
	if job.Parameters.Sector != "finance" {
		t.Errorf("parameters = %+v", job.Parameters)
	}

	running := jobs.StatusRunning
	total := 30
	job, err = tracker.Update(ctx, job.ID, jobs.Update{Status: &running, UnitsTotal: &total})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if job.StartedAt == nil {
		t.Error("started_at not stamped")
	}

	got, err := tracker.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != jobs.StatusRunning || got.UnitsTotal != 30 {
		t.Errorf("persisted job = %+v", got)
	}

	completed := jobs.StatusCompleted
	job, err = tracker.Update(ctx, job.ID, jobs.Update{
		Status:  &completed,
		Summary: &jobs.Summary{Succeeded: 28, Failed: 2, Questions: 560},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if job.CompletedAt == nil {
		t.Error("completed_at not stamped")
	}

	got, err = tracker.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Summary == nil || got.Summary.Questions != 560 {
		t.Errorf("summary lost: %+v", got.Summary)
	}

	failed := jobs.StatusFailed
	if _, err := tracker.Update(ctx, job.ID, jobs.Update{Status: &failed}); !errors.Is(err, jobs.ErrTerminal) {
		t.Fatalf("expected ErrTerminal, got %v", err)
	}
}

func TestJobTracker_ListFilters(t *testing.T) {
	s := openTestStore(t)
	tracker := s.JobTracker()
	ctx := context.Background()

	first, err := tracker.Create(ctx, jobs.TypeFull, jobs.Parameters{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := tracker.Create(ctx, jobs.TypeSoftSkills, jobs.Parameters{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled := jobs.StatusCancelled
	if _, err := tracker.Update(ctx, first.ID, jobs.Update{Status: &cancelled}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := tracker.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(all))
	}

	pending, err := tracker.List(ctx, jobs.StatusPending)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 1 || pending[0].Type != jobs.TypeSoftSkills {
		t.Errorf("pending filter returned %d jobs", len(pending))
	}
}

func TestJobTracker_Errors(t *testing.T) {
	s := openTestStore(t)
	tracker := s.JobTracker()
	ctx := context.Background()

	if _, err := tracker.Get(ctx, uuid.New()); !errors.Is(err, jobs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := tracker.Create(ctx, jobs.Type("bogus"), jobs.Parameters{}); err == nil {
		t.Fatal("expected error for invalid job type")
	}
}
