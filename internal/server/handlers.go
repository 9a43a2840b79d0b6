package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/pipeline"
	"github.com/jonathan/ai-recruiter/internal/types"
)

// SubmitApplicationRequest is the body for POST /applications.
type SubmitApplicationRequest struct {
	FilePath string `json:"file_path,omitempty"`
	RawText  string `json:"raw_text,omitempty"`
}

// handleSubmitApplication runs a resume through the workflow and returns the
// full workflow context. Failed runs still return their context so callers
// can see which stage broke.
func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req SubmitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	input := types.ResumeInput{FilePath: req.FilePath, RawText: req.RawText}
	wc, err := s.processor.ProcessApplication(r.Context(), input)
	if err != nil {
		s.log.Warn("application run failed",
			zap.String("run_id", wc.ID.String()),
			zap.Error(err))
		s.jsonResponse(w, HTTPStatus(err), wc)
		return
	}

	s.jsonResponse(w, http.StatusOK, wc)
}

// ListJobsResponse is the body for GET /jobs.
type ListJobsResponse struct {
	Jobs  []types.JobPosting `json:"jobs"`
	Count int                `json:"count"`
}

// handleListJobs lists job postings with an optional experience level filter.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var jobs []types.JobPosting
	var err error
	if levelStr := r.URL.Query().Get("experience_level"); levelStr != "" {
		level := types.ExperienceLevel(levelStr)
		if !level.Valid() {
			s.errorResponse(w, http.StatusBadRequest, "Invalid experience_level")
			return
		}
		jobs, err = s.store.FindByExperienceLevel(ctx, level)
	} else {
		jobs, err = s.store.ListJobs(ctx)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobsResponse{Jobs: jobs, Count: len(jobs)})
}

// handleCreateJob adds a job posting.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var job types.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validateJob(job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.AddJob(r.Context(), job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetJob retrieves a job posting by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJob replaces a job posting.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var job types.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	job.ID = id
	if err := validateJob(job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	if err := s.store.UpdateJob(r.Context(), job); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func validateJob(job types.JobPosting) error {
	if job.Title == "" {
		return &pipeline.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !job.ExperienceLevel.Valid() {
		return &pipeline.ValidationError{Field: "experience_level", Reason: "unrecognized value"}
	}
	return nil
}
