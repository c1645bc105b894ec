package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fwr/quizgen/ent"
	"github.com/fwr/quizgen/ent/generationjob"
	"github.com/fwr/quizgen/internal/jobs"
)

// jobTracker implements jobs.Tracker on the generation_jobs table.
// Updates are serialized by a process-level mutex; the database is
// owned by a single process.
type jobTracker struct {
	mu     sync.Mutex
	client *ent.Client
}

var _ jobs.Tracker = (*jobTracker)(nil)

// JobTracker returns the persistent job tracker.
func (s *Store) JobTracker() jobs.Tracker {
	return &jobTracker{client: s.client}
}

func (t *jobTracker) Create(ctx context.Context, jobType jobs.Type, params jobs.Parameters) (*jobs.Job, error) {
	if !jobType.Valid() {
		return nil, fmt.Errorf("invalid job type %q", jobType)
	}

	paramsMap, err := toMap(params)
	if err != nil {
		return nil, fmt.Errorf("encode job parameters: %w", err)
	}

	row, err := t.client.GenerationJob.Create().
		SetJobType(string(jobType)).
		SetStatus(string(jobs.StatusPending)).
		SetParameters(paramsMap).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return fromRow(row)
}

func (t *jobTracker) Get(ctx context.Context, id uuid.UUID) (*jobs.Job, error) {
	row, err := t.client.GenerationJob.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, jobs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}
	return fromRow(row)
}

func (t *jobTracker) List(ctx context.Context, status jobs.Status) ([]*jobs.Job, error) {
	query := t.client.GenerationJob.Query()
	if status != "" {
		query = query.Where(generationjob.StatusEQ(string(status)))
	}
	rows, err := query.Order(ent.Desc(generationjob.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	out := make([]*jobs.Job, 0, len(rows))
	for _, row := range rows {
		job, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, nil
}

func (t *jobTracker) Update(ctx context.Context, id uuid.UUID, update jobs.Update) (*jobs.Job, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, err := t.client.GenerationJob.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, jobs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}

	job, err := fromRow(row)
	if err != nil {
		return nil, err
	}
	if err := jobs.Apply(job, update, time.Now().UTC()); err != nil {
		return nil, err
	}

	builder := t.client.GenerationJob.UpdateOneID(id).
		SetStatus(string(job.Status)).
		SetUnitsTotal(job.UnitsTotal).
		SetUnitsDone(job.UnitsDone).
		SetCurrentUnit(job.CurrentUnit).
		SetNillableStartedAt(job.StartedAt).
		SetNillableCompletedAt(job.CompletedAt)

	if job.Summary != nil {
		summaryMap, err := toMap(*job.Summary)
		if err != nil {
			return nil, fmt.Errorf("encode job summary: %w", err)
		}
		builder = builder.SetResultSummary(summaryMap)
	}

	if _, err := builder.Save(ctx); err != nil {
		return nil, fmt.Errorf("update job %s: %w", id, err)
	}
	return job, nil
}

func fromRow(row *ent.GenerationJob) (*jobs.Job, error) {
	job := &jobs.Job{
		ID:          row.ID,
		Type:        jobs.Type(row.JobType),
		Status:      jobs.Status(row.Status),
		UnitsTotal:  row.UnitsTotal,
		UnitsDone:   row.UnitsDone,
		CurrentUnit: row.CurrentUnit,
		CreatedAt:   row.CreatedAt,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}

	if len(row.Parameters) > 0 {
		if err := fromMap(row.Parameters, &job.Parameters); err != nil {
			return nil, fmt.Errorf("decode job parameters: %w", err)
		}
	}
	if len(row.ResultSummary) > 0 {
		var summary jobs.Summary
		if err := fromMap(row.ResultSummary, &summary); err != nil {
			return nil, fmt.Errorf("decode job summary: %w", err)
		}
		job.Summary = &summary
	}
	return job, nil
}

func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromMap(m map[string]any, v any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
