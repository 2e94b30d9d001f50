package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalSubmission_ValidateAcceptsEmptyFields(t *testing.T) {
	sub := &FinalSubmission{}
	assert.NoError(t, sub.Validate())
}

func TestFinalSubmission_ValidateAcceptsURLs(t *testing.T) {
	sub := &FinalSubmission{
		Lovable: "https://lovable.dev/projects/abc",
		GitHub:  "https://github.com/user/repo",
		Deploy:  "https://app.example.com",
	}
	assert.NoError(t, sub.Validate())
}

func TestFinalSubmission_FieldErrors(t *testing.T) {
	sub := &FinalSubmission{
		Lovable: "https://lovable.dev/projects/abc",
		GitHub:  "not a url",
		Deploy:  "also bad",
	}

	errs := sub.FieldErrors()
	require.Len(t, errs, 2)
	assert.Equal(t, "Invalid URL format", errs["github"])
	assert.Equal(t, "Invalid URL format", errs["deploy"])
	assert.NotContains(t, errs, "lovable")
}

func TestFinalSubmission_Complete(t *testing.T) {
	assert.False(t, (&FinalSubmission{}).Complete())
	assert.False(t, (&FinalSubmission{Lovable: "a", GitHub: "b"}).Complete())
	assert.True(t, (&FinalSubmission{Lovable: "a", GitHub: "b", Deploy: "c"}).Complete())
}
