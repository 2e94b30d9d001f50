// Package ship tracks release readiness: the 10-item internal test
// checklist and the final submission links, both persisted in the
// key/value store. Shipping is gated on a fully checked list and three
// well-formed URLs.
package ship

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/prepstack/placement-prep/internal/store"
	"github.com/prepstack/placement-prep/internal/types"
)

// TestItem is one manual verification item on the internal checklist.
type TestItem struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Hint  string `json:"hint"`
}

// TestItems returns the fixed internal test checklist.
func TestItems() []TestItem {
	return []TestItem{
		{ID: 1, Label: "JD required validation works", Hint: "Try analyzing with an empty JD."},
		{ID: 2, Label: "Short JD warning shows for <200 chars", Hint: "Paste a very short JD and check for the warning."},
		{ID: 3, Label: "Skills extraction groups correctly", Hint: "Check if Java appears in Languages and React in Web."},
		{ID: 4, Label: "Round mapping changes based on company + skills", Hint: "Test \"Amazon\" (Enterprise) vs a generic name (Startup)."},
		{ID: 5, Label: "Score calculation is deterministic", Hint: "Same JD should result in the same Base Score."},
		{ID: 6, Label: "Skill toggles update score live", Hint: "Mark a skill as known and watch the score adapt."},
		{ID: 7, Label: "Changes persist after restart", Hint: "Assess skills, restart, and check if toggles stayed."},
		{ID: 8, Label: "History saves and loads correctly", Hint: "Check the history after an analysis."},
		{ID: 9, Label: "Export renders the correct content", Hint: "Export the plan and compare it with the results."},
		{ID: 10, Label: "No errors on core operations", Hint: "Run through analyze, toggle, and export end to end."},
	}
}

// Tracker persists checklist and submission state.
type Tracker struct {
	store store.Store
}

// NewTracker creates a Tracker over the given store.
func NewTracker(s store.Store) *Tracker {
	return &Tracker{store: s}
}

// Checked returns the checked item ids, sorted ascending. Unparseable
// stored state behaves as an empty checklist.
func (t *Tracker) Checked(ctx context.Context) ([]int, error) {
	raw, found, err := t.store.Get(ctx, store.KeyTestStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to read test status: %w", err)
	}
	if !found {
		return []int{}, nil
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return []int{}, nil
	}
	sort.Ints(ids)
	return ids, nil
}

// Toggle checks or unchecks one item and returns the new checked set.
func (t *Tracker) Toggle(ctx context.Context, id int) ([]int, error) {
	if id < 1 || id > len(TestItems()) {
		return nil, fmt.Errorf("unknown test item id %d", id)
	}

	ids, err := t.Checked(ctx)
	if err != nil {
		return nil, err
	}

	next := make([]int, 0, len(ids)+1)
	removed := false
	for _, existing := range ids {
		if existing == id {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		next = append(next, id)
		sort.Ints(next)
	}

	if err := t.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Reset clears all checklist progress.
func (t *Tracker) Reset(ctx context.Context) error {
	return t.save(ctx, []int{})
}

// Passed reports whether every checklist item is checked.
func (t *Tracker) Passed(ctx context.Context) (bool, error) {
	ids, err := t.Checked(ctx)
	if err != nil {
		return false, err
	}
	return len(ids) == len(TestItems()), nil
}

func (t *Tracker) save(ctx context.Context, ids []int) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal test status: %w", err)
	}
	if err := t.store.Set(ctx, store.KeyTestStatus, data); err != nil {
		return fmt.Errorf("failed to save test status: %w", err)
	}
	return nil
}

// Submission returns the stored final submission links, or an empty record
// if none have been saved (or the stored value is unparseable).
func (t *Tracker) Submission(ctx context.Context) (*types.FinalSubmission, error) {
	raw, found, err := t.store.Get(ctx, store.KeySubmission)
	if err != nil {
		return nil, fmt.Errorf("failed to read submission: %w", err)
	}

	sub := &types.FinalSubmission{}
	if !found {
		return sub, nil
	}
	if err := json.Unmarshal(raw, sub); err != nil {
		return &types.FinalSubmission{}, nil
	}
	return sub, nil
}

// SaveSubmission persists the submission links. Links are stored even when
// invalid; validation gates shipping, not saving.
func (t *Tracker) SaveSubmission(ctx context.Context, sub *types.FinalSubmission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}
	if err := t.store.Set(ctx, store.KeySubmission, data); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// Status is the evaluated ship gate.
type Status struct {
	TestsPassed bool              `json:"testsPassed"`
	PassCount   int               `json:"passCount"`
	Submission  types.FinalSubmission `json:"submission"`
	LinkErrors  map[string]string `json:"linkErrors"`
	Shipped     bool              `json:"shipped"`
}

// Evaluate computes the current ship gate: tests all passed, all three
// links present, and every link a well-formed URL.
func (t *Tracker) Evaluate(ctx context.Context) (*Status, error) {
	ids, err := t.Checked(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := t.Submission(ctx)
	if err != nil {
		return nil, err
	}

	linkErrors := sub.FieldErrors()
	passed := len(ids) == len(TestItems())

	return &Status{
		TestsPassed: passed,
		PassCount:   len(ids),
		Submission:  *sub,
		LinkErrors:  linkErrors,
		Shipped:     passed && sub.Complete() && len(linkErrors) == 0,
	}, nil
}
