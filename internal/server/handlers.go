package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fwr/quizgen/internal/jobs"
	"github.com/fwr/quizgen/internal/quizgen"
)

type createJobRequest struct {
	Type   jobs.Type `json:"type"`
	Sector string    `json:"sector,omitempty"`
	Career string    `json:"career,omitempty"`
	Level  int       `json:"level,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "type must be one of: full, sector, career_level, soft_skills")
		return
	}

	params := jobs.Parameters{Sector: req.Sector, Career: req.Career, Level: req.Level}
	units, err := unitsForJob(req.Type, params)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.tracker.Create(r.Context(), req.Type, params)
	if err != nil {
		s.log.Errorw("failed to create job", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	if !s.launch(job, units) {
		// Creation raced with an active run; mark the job cancelled so
		// it doesn't linger as pending forever.
		cancelled := jobs.StatusCancelled
		if _, err := s.tracker.Update(r.Context(), job.ID, jobs.Update{Status: &cancelled}); err != nil {
			s.log.Warnw("failed to cancel rejected job", "job", job.ID, "error", err)
		}
		writeError(w, http.StatusConflict, "a generation job is already running")
		return
	}

	writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	status := jobs.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	list, err := s.tracker.List(r.Context(), status)
	if err != nil {
		s.log.Errorw("failed to list jobs", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if list == nil {
		list = []*jobs.Job{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": list})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := s.tracker.Get(r.Context(), id)
	if errors.Is(err, jobs.ErrNotFound) {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		s.log.Errorw("failed to get job", "job", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleCancelJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := s.tracker.Get(r.Context(), id)
	if errors.Is(err, jobs.ErrNotFound) {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		s.log.Errorw("failed to get job", "job", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if job.Status.Terminal() {
		writeError(w, http.StatusConflict, "job is already "+string(job.Status))
		return
	}

	s.mu.Lock()
	flag, active := s.cancels[id]
	s.mu.Unlock()

	if active {
		// The run goroutine finalizes the status once the current unit
		// finishes; cancellation is cooperative between units.
		flag.Cancel()
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "cancelling"})
		return
	}

	// Not running; transition directly.
	cancelled := jobs.StatusCancelled
	job, err = s.tracker.Update(r.Context(), id, jobs.Update{Status: &cancelled})
	if err != nil {
		s.log.Errorw("failed to cancel job", "job", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to cancel job")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleCheckpoint(w http.ResponseWriter, _ *http.Request) {
	entries := s.checkpoints.Entries()
	writeJSON(w, http.StatusOK, map[string]any{
		"completed_units": len(entries),
		"total_units":     len(quizgen.AllUnits()),
		"entries":         entries,
	})
}

func (s *Server) handleSectors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sectors": quizgen.SectorSummaries()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
