package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prepstack/placement-prep/internal/analysis"
	"github.com/prepstack/placement-prep/internal/ingestion"
	"github.com/prepstack/placement-prep/internal/report"
	"github.com/prepstack/placement-prep/internal/store"
	"github.com/prepstack/placement-prep/internal/types"
)

// AnalyzeRequest represents the request body for POST /analyze
type AnalyzeRequest struct {
	Company           string `json:"company"`
	Role              string `json:"role"`
	JobDescription    string `json:"jobDescription"`
	JobDescriptionURL string `json:"jobDescriptionUrl"`
}

// AnalyzeResponse represents the response for POST /analyze
type AnalyzeResponse struct {
	Record  *types.AnalysisRecord `json:"record"`
	Warning string                `json:"warning,omitempty"`
}

// handleAnalyze runs the readiness analysis on a job description and saves
// the result as the newest history entry.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	jdText := req.JobDescription
	if jdText == "" && req.JobDescriptionURL != "" {
		fetched, err := ingestion.FromURL(r.Context(), req.JobDescriptionURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job description: "+err.Error())
			return
		}
		jdText = fetched
	}

	warning, err := ingestion.CheckLength(jdText)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please paste a longer job description (at least 50 characters).")
		return
	}

	record := analysis.Analyze(strings.TrimSpace(req.Company), strings.TrimSpace(req.Role), jdText)

	s.mu.Lock()
	saveErr := s.history.SaveAnalysis(r.Context(), record)
	s.mu.Unlock()
	if saveErr != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save analysis: "+saveErr.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, AnalyzeResponse{Record: record, Warning: warning})
}

// HistoryEntry is one history entry in the list response. Corrupted entries
// carry no record and are flagged so clients can render them as inert.
type HistoryEntry struct {
	Record    *types.AnalysisRecord `json:"record,omitempty"`
	Corrupted bool                  `json:"corrupted,omitempty"`
}

// HistoryResponse represents the response for listing history entries
type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Count   int            `json:"count"`
}

// handleHistory lists all saved analyses, newest first
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.history.LoadEntries(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load history: "+err.Error())
		return
	}

	resp := HistoryResponse{Entries: make([]HistoryEntry, 0, len(entries)), Count: len(entries)}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, HistoryEntry{Record: e.Record, Corrupted: e.Corrupted})
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleLatest returns the most recent analysis
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	record, err := s.history.GetLatestAnalysis(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load latest analysis: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "No analysis yet")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleToggleSkill flips one skill's confidence on a saved analysis and
// returns the record with its recomputed final score.
func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	skill := r.PathValue("skill")
	if skill == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing skill name")
		return
	}

	s.mu.Lock()
	record, err := s.history.ToggleSkillConfidence(r.Context(), id, skill)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Analysis not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update analysis: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleReport renders a saved analysis as a plain-text report download
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entries, err := s.history.LoadEntries(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load history: "+err.Error())
		return
	}

	for _, e := range entries {
		if e.Record != nil && e.Record.ID == id {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(e.Record)))
			fmt.Fprint(w, report.Full(e.Record))
			return
		}
	}

	s.errorResponse(w, http.StatusNotFound, "Analysis not found")
}
