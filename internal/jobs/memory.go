package jobs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryTracker is an in-memory Tracker for tests and ephemeral runs.
type MemoryTracker struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*Job
}

var _ Tracker = (*MemoryTracker)(nil)

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{jobs: make(map[uuid.UUID]*Job)}
}

func (t *MemoryTracker) Create(_ context.Context, jobType Type, params Parameters) (*Job, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job := &Job{
		ID:         uuid.New(),
		Type:       jobType,
		Status:     StatusPending,
		Parameters: params,
		CreatedAt:  time.Now().UTC(),
	}
	t.jobs[job.ID] = job
	return cloneJob(job), nil
}

func (t *MemoryTracker) Get(_ context.Context, id uuid.UUID) (*Job, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneJob(job), nil
}

func (t *MemoryTracker) List(_ context.Context, status Status) ([]*Job, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []*Job
	for _, job := range t.jobs {
		if status != "" && job.Status != status {
			continue
		}
		out = append(out, cloneJob(job))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (t *MemoryTracker) Update(_ context.Context, id uuid.UUID, update Update) (*Job, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := Apply(job, update, time.Now().UTC()); err != nil {
		return nil, err
	}
	return cloneJob(job), nil
}

func cloneJob(job *Job) *Job {
	out := *job
	if job.StartedAt != nil {
		t := *job.StartedAt
		out.StartedAt = &t
	}
	if job.CompletedAt != nil {
		t := *job.CompletedAt
		out.CompletedAt = &t
	}
	if job.Summary != nil {
		s := *job.Summary
		out.Summary = &s
	}
	return &out
}
