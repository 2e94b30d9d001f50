package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prepstack/placement-prep/internal/fetch"
)

// JD length policy: below MinJDLength analysis is refused outright; between
// MinJDLength and WarnJDLength it proceeds with an advisory warning.
const (
	MinJDLength  = 50
	WarnJDLength = 200
)

// ErrJDTooShort is returned when the JD is below the hard minimum.
var ErrJDTooShort = errors.New("job description too short to analyze")

// ShortJDWarning is the advisory shown for JDs that proceed but are too
// short for a deep analysis.
const ShortJDWarning = "Job description is quite short. Analysis might be less detailed."

// CheckLength applies the JD length policy. It returns ErrJDTooShort below
// the hard minimum, otherwise an advisory warning string (possibly empty).
func CheckLength(jdText string) (warning string, err error) {
	if len(jdText) < MinJDLength {
		return "", fmt.Errorf("%w: need at least %d characters, got %d", ErrJDTooShort, MinJDLength, len(jdText))
	}
	if len(jdText) < WarnJDLength {
		return ShortJDWarning, nil
	}
	return "", nil
}

// FromURL fetches a job posting page and extracts its text content.
func FromURL(ctx context.Context, urlStr string) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("failed to extract posting text: %w", err)
	}

	return CleanText(text), nil
}

// FromFile reads a job description from a text file.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return CleanText(string(content)), nil
}
