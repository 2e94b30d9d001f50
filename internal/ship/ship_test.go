package ship

import (
	"context"
	"testing"

	"github.com/prepstack/placement-prep/internal/store"
	"github.com/prepstack/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestItems_TenFixedItems(t *testing.T) {
	items := TestItems()
	require.Len(t, items, 10)
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
		assert.NotEmpty(t, item.Label)
		assert.NotEmpty(t, item.Hint)
	}
}

func TestTracker_ToggleAndChecked(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(store.NewMemoryStore())

	ids, err := tracker.Checked(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = tracker.Toggle(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids)

	ids, err = tracker.Toggle(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	// Toggling again unchecks.
	ids, err = tracker.Toggle(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
}

func TestTracker_ToggleUnknownID(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(store.NewMemoryStore())

	_, err := tracker.Toggle(ctx, 0)
	assert.Error(t, err)
	_, err = tracker.Toggle(ctx, 11)
	assert.Error(t, err)
}

func TestTracker_PassedAndReset(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(store.NewMemoryStore())

	for id := 1; id <= 10; id++ {
		_, err := tracker.Toggle(ctx, id)
		require.NoError(t, err)
	}

	passed, err := tracker.Passed(ctx)
	require.NoError(t, err)
	assert.True(t, passed)

	require.NoError(t, tracker.Reset(ctx))
	passed, err = tracker.Passed(ctx)
	require.NoError(t, err)
	assert.False(t, passed)
}

func TestTracker_CorruptStatusBehavesAsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	require.NoError(t, mem.Set(ctx, store.KeyTestStatus, []byte(`"not an array"`)))

	ids, err := NewTracker(mem).Checked(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTracker_Submission(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(store.NewMemoryStore())

	sub, err := tracker.Submission(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.FinalSubmission{}, sub)

	saved := &types.FinalSubmission{
		Lovable: "https://lovable.dev/projects/abc",
		GitHub:  "not a url",
		Deploy:  "",
	}
	require.NoError(t, tracker.SaveSubmission(ctx, saved))

	sub, err = tracker.Submission(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, sub)
}

func TestTracker_EvaluateGates(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(store.NewMemoryStore())

	// Nothing done yet.
	status, err := tracker.Evaluate(ctx)
	require.NoError(t, err)
	assert.False(t, status.TestsPassed)
	assert.False(t, status.Shipped)
	assert.Equal(t, 0, status.PassCount)

	// All tests pass but links missing.
	for id := 1; id <= 10; id++ {
		_, err := tracker.Toggle(ctx, id)
		require.NoError(t, err)
	}
	status, err = tracker.Evaluate(ctx)
	require.NoError(t, err)
	assert.True(t, status.TestsPassed)
	assert.False(t, status.Shipped)

	// Invalid link blocks shipping with a per-field error.
	require.NoError(t, tracker.SaveSubmission(ctx, &types.FinalSubmission{
		Lovable: "https://lovable.dev/projects/abc",
		GitHub:  "not a url",
		Deploy:  "https://app.example.com",
	}))
	status, err = tracker.Evaluate(ctx)
	require.NoError(t, err)
	assert.False(t, status.Shipped)
	assert.Equal(t, "Invalid URL format", status.LinkErrors["github"])

	// All valid links ship.
	require.NoError(t, tracker.SaveSubmission(ctx, &types.FinalSubmission{
		Lovable: "https://lovable.dev/projects/abc",
		GitHub:  "https://github.com/user/repo",
		Deploy:  "https://app.example.com",
	}))
	status, err = tracker.Evaluate(ctx)
	require.NoError(t, err)
	assert.True(t, status.Shipped)
	assert.Empty(t, status.LinkErrors)
}
