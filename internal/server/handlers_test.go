package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fwr/quizgen/internal/checkpoint"
	"github.com/fwr/quizgen/internal/jobs"
	"github.com/fwr/quizgen/internal/quizgen"
	"github.com/fwr/quizgen/internal/runner"
)

// stubUnitRunner completes every unit with a fixed question count. When
// proceed is non-nil each call blocks until the channel is fed, and
// started signals that a call has begun.
type stubUnitRunner struct {
	questions int
	started   chan string
	proceed   chan struct{}
}

func (s *stubUnitRunner) Run(_ context.Context, unit quizgen.Unit) (*quizgen.UnitResult, error) {
	if s.started != nil {
		s.started <- unit.Key()
	}
	if s.proceed != nil {
		<-s.proceed
	}
	questions := make([]quizgen.Question, s.questions)
	for i := range questions {
		questions[i] = quizgen.Question{ID: i + 1, Question: "q"}
	}
	return &quizgen.UnitResult{Unit: unit, Questions: questions, Selected: s.questions}, nil
}

type discardSink struct{}

func (discardSink) SavePool(quizgen.Unit, []quizgen.Question) error { return nil }

type testEnv struct {
	server      *Server
	tracker     *jobs.MemoryTracker
	checkpoints *checkpoint.File
	router      http.Handler
}

func newTestEnv(t *testing.T, ur runner.UnitRunner) *testEnv {
	t.Helper()
	cp, err := checkpoint.Open(filepath.Join(t.TempDir(), "checkpoint.json"))
	require.NoError(t, err)

	tracker := jobs.NewMemoryTracker()
	r := runner.New(ur, cp, discardSink{}, nil)
	srv := New(r, tracker, cp, nil)
	return &testEnv{server: srv, tracker: tracker, checkpoints: cp, router: srv.Router()}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJob(t *testing.T, rec *httptest.ResponseRecorder) *jobs.Job {
	t.Helper()
	var job jobs.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	return &job
}

// waitForStatus polls until the job reaches the wanted status.
func waitForStatus(t *testing.T, tracker jobs.Tracker, id uuid.UUID, want jobs.Status) *jobs.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := tracker.Get(context.Background(), id)
		require.NoError(t, err)
		if job.Status == want {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", id, want)
	return nil
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})
	rec := env.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateJob_SoftSkills(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})

	rec := env.do(t, http.MethodPost, "/api/generation/jobs", map[string]any{"type": "soft_skills"})
	require.Equal(t, http.StatusAccepted, rec.Code)
	job := decodeJob(t, rec)
	require.Equal(t, jobs.TypeSoftSkills, job.Type)

	done := waitForStatus(t, env.tracker, job.ID, jobs.StatusCompleted)
	require.Equal(t, 1, done.UnitsTotal)
	require.Equal(t, 1, done.UnitsDone)
	require.NotNil(t, done.Summary)
	require.Equal(t, 1, done.Summary.Succeeded)
	require.Equal(t, 20, done.Summary.Questions)
	require.NotNil(t, done.StartedAt)
	require.NotNil(t, done.CompletedAt)
}

func TestCreateJob_CareerLevel(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})

	rec := env.do(t, http.MethodPost, "/api/generation/jobs", map[string]any{
		"type": "career_level", "sector": "finance", "career": "auditor", "level": 3,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	job := decodeJob(t, rec)

	done := waitForStatus(t, env.tracker, job.ID, jobs.StatusCompleted)
	require.Equal(t, 1, done.UnitsTotal)
	require.Equal(t, "finance", done.Parameters.Sector)
}

func TestCreateJob_BadRequests(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown type", map[string]any{"type": "everything"}},
		{"unknown sector", map[string]any{"type": "sector", "sector": "agriculture"}},
		{"unknown career", map[string]any{"type": "career_level", "sector": "finance", "career": "pilot"}},
		{"level out of range", map[string]any{"type": "career_level", "sector": "finance", "career": "auditor", "level": 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/generation/jobs", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateJob_ConflictWhileRunning(t *testing.T) {
	ur := &stubUnitRunner{
		questions: 20,
		started:   make(chan string, 1),
		proceed:   make(chan struct{}),
	}
	env := newTestEnv(t, ur)

	rec := env.do(t, http.MethodPost, "/api/generation/jobs", map[string]any{"type": "soft_skills"})
	require.Equal(t, http.StatusAccepted, rec.Code)
	first := decodeJob(t, rec)
	<-ur.started // the run goroutine is now inside the unit

	rec = env.do(t, http.MethodPost, "/api/generation/jobs", map[string]any{"type": "soft_skills"})
	require.Equal(t, http.StatusConflict, rec.Code)

	// the rejected job must not linger as pending
	list, err := env.tracker.List(context.Background(), jobs.StatusCancelled)
	require.NoError(t, err)
	require.Len(t, list, 1)

	close(ur.proceed)
	waitForStatus(t, env.tracker, first.ID, jobs.StatusCompleted)
}

func TestGetJob(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})

	rec := env.do(t, http.MethodGet, "/api/generation/jobs/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/generation/jobs/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	job, err := env.tracker.Create(context.Background(), jobs.TypeFull, jobs.Parameters{})
	require.NoError(t, err)
	rec = env.do(t, http.MethodGet, "/api/generation/jobs/"+job.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, job.ID, decodeJob(t, rec).ID)
}

func TestListJobs(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})
	_, err := env.tracker.Create(context.Background(), jobs.TypeFull, jobs.Parameters{})
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/generation/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Jobs []*jobs.Job `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Jobs, 1)

	rec = env.do(t, http.MethodGet, "/api/generation/jobs?status=completed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Empty(t, out.Jobs)

	rec = env.do(t, http.MethodGet, "/api/generation/jobs?status=exploded", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelJob_ActiveRun(t *testing.T) {
	ur := &stubUnitRunner{
		questions: 20,
		started:   make(chan string, 10),
		proceed:   make(chan struct{}),
	}
	env := newTestEnv(t, ur)

	// five units, so cancellation can bite between them
	rec := env.do(t, http.MethodPost, "/api/generation/jobs", map[string]any{
		"type": "career_level", "sector": "finance", "career": "auditor",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	job := decodeJob(t, rec)
	<-ur.started

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/generation/jobs/%s/cancel", job.ID), nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	// let the in-flight unit finish; the runner then sees the flag
	ur.proceed <- struct{}{}

	done := waitForStatus(t, env.tracker, job.ID, jobs.StatusCancelled)
	require.NotNil(t, done.Summary)
	require.Equal(t, 1, done.Summary.Succeeded)
}

func TestCancelJob_InactiveJob(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})
	job, err := env.tracker.Create(context.Background(), jobs.TypeFull, jobs.Parameters{})
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/generation/jobs/%s/cancel", job.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, jobs.StatusCancelled, decodeJob(t, rec).Status)

	// terminal jobs cannot be cancelled twice
	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/generation/jobs/%s/cancel", job.ID), nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckpointEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})
	require.NoError(t, env.checkpoints.MarkDone("finance_auditor_lvl1", 20))

	rec := env.do(t, http.MethodGet, "/api/generation/checkpoint", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		CompletedUnits int                         `json:"completed_units"`
		TotalUnits     int                         `json:"total_units"`
		Entries        map[string]checkpoint.Entry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, 1, out.CompletedUnits)
	require.Equal(t, len(quizgen.AllUnits()), out.TotalUnits)
	require.Contains(t, out.Entries, "finance_auditor_lvl1")
}

func TestSectorsEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubUnitRunner{questions: 20})

	rec := env.do(t, http.MethodGet, "/api/generation/sectors", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Sectors []quizgen.SectorSummary `json:"sectors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Sectors, len(quizgen.Sectors()))
}

func TestUnitsForJob(t *testing.T) {
	units, err := unitsForJob(jobs.TypeFull, jobs.Parameters{})
	require.NoError(t, err)
	require.Equal(t, len(quizgen.AllUnits()), len(units))

	units, err = unitsForJob(jobs.TypeSector, jobs.Parameters{Sector: "education"})
	require.NoError(t, err)
	require.Equal(t, len(quizgen.UnitsForSector("education")), len(units))

	units, err = unitsForJob(jobs.TypeCareerLevel, jobs.Parameters{Sector: "finance", Career: "auditor"})
	require.NoError(t, err)
	require.Len(t, units, quizgen.MaxLevel)

	units, err = unitsForJob(jobs.TypeCareerLevel, jobs.Parameters{Sector: "finance", Career: "auditor", Level: 2})
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.Equal(t, 2, units[0].Level)

	units, err = unitsForJob(jobs.TypeSoftSkills, jobs.Parameters{})
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.True(t, units[0].SoftSkills)

	_, err = unitsForJob(jobs.Type("bogus"), jobs.Parameters{})
	require.Error(t, err)
}
