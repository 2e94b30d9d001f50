package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/prepstack/placement-prep/internal/ship"
	"github.com/prepstack/placement-prep/internal/types"
)

// ChecklistResponse represents the response for the self-test checklist
type ChecklistResponse struct {
	Items   []ship.TestItem `json:"items"`
	Checked []int           `json:"checked"`
	Passed  bool            `json:"passed"`
}

// handleChecklist returns the self-test checklist and current progress
func (s *Server) handleChecklist(w http.ResponseWriter, r *http.Request) {
	checked, err := s.tracker.Checked(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load checklist: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChecklistResponse{
		Items:   ship.TestItems(),
		Checked: checked,
		Passed:  len(checked) == len(ship.TestItems()),
	})
}

// handleToggleCheck checks or unchecks one checklist item
func (s *Server) handleToggleCheck(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid checklist item ID")
		return
	}

	s.mu.Lock()
	checked, err := s.tracker.Toggle(r.Context(), id)
	s.mu.Unlock()
	if err != nil {
		if id < 1 || id > len(ship.TestItems()) {
			s.errorResponse(w, http.StatusNotFound, "Checklist item not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update checklist: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChecklistResponse{
		Items:   ship.TestItems(),
		Checked: checked,
		Passed:  len(checked) == len(ship.TestItems()),
	})
}

// handleResetChecklist clears all checklist progress
func (s *Server) handleResetChecklist(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.tracker.Reset(r.Context())
	s.mu.Unlock()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to reset checklist: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChecklistResponse{
		Items:   ship.TestItems(),
		Checked: []int{},
		Passed:  false,
	})
}

// SubmissionResponse represents the response for submission reads and writes
type SubmissionResponse struct {
	Submission *types.FinalSubmission `json:"submission"`
	LinkErrors map[string]string      `json:"linkErrors"`
}

// handleGetSubmission returns the stored final submission links
func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := s.tracker.Submission(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load submission: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SubmissionResponse{Submission: sub, LinkErrors: sub.FieldErrors()})
}

// handlePutSubmission stores the final submission links. Invalid links are
// stored too; the per-field errors in the response tell the client what
// still blocks shipping.
func (s *Server) handlePutSubmission(w http.ResponseWriter, r *http.Request) {
	var sub types.FinalSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	s.mu.Lock()
	err := s.tracker.SaveSubmission(r.Context(), &sub)
	s.mu.Unlock()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save submission: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SubmissionResponse{Submission: &sub, LinkErrors: sub.FieldErrors()})
}

// handleShipStatus returns the evaluated ship gate
func (s *Server) handleShipStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.tracker.Evaluate(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to evaluate ship status: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, status)
}
