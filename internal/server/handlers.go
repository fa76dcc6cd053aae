package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxBodyBytes caps the request body; each document is additionally truncated
// by the engine's own input cap.
const maxBodyBytes = 1 << 20

// MatchRequest represents the request body for /match. Empty documents are
// valid input: they produce an underspecified result, not an error.
type MatchRequest struct {
	JobText    string `json:"job_text"`
	ResumeText string `json:"resume_text"`
}

// MatchResponse represents the response for /match.
type MatchResponse struct {
	RequestID string             `json:"request_id"`
	Result    *types.MatchResult `json:"result"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleMatch runs one matching request.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.engine.Match(r.Context(), pipeline.Request{
		JobText:    req.JobText,
		ResumeText: req.ResumeText,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "match failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchResponse{
		RequestID: uuid.NewString(),
		Result:    result,
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, msg string) {
	s.jsonResponse(w, status, ErrorResponse{Error: msg})
}
