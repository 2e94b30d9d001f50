// Package report renders analysis records as plain text: the downloadable
// full report and the copyable blocks for questions, plan, roadmap, and
// final submission.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/prepstack/placement-prep/internal/types"
)

// Full renders the complete downloadable report for a record.
func Full(record *types.AnalysisRecord) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("PLACEMENT PREP REPORT: %s - %s\n", record.Company, record.Role))
	sb.WriteString(fmt.Sprintf("Base Score: %d/100\n", record.BaseScore))
	sb.WriteString(fmt.Sprintf("Final readiness Score: %d/100\n", record.FinalScore))
	sb.WriteString(fmt.Sprintf("Date: %s\n", formatDate(record.CreatedAt)))
	sb.WriteString("\n")

	sb.WriteString("SKILLS:\n")
	for _, cat := range record.ExtractedSkills.Categories() {
		if len(cat.Skills) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", cat.Label, strings.Join(cat.Skills, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString("7-DAY PLAN:\n")
	for _, day := range record.Plan7Days {
		sb.WriteString(fmt.Sprintf("%s (%s): %s\n", day.Day, day.Focus, strings.Join(day.Tasks, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString("INTERVIEW ROADMAP:\n")
	sb.WriteString(Roadmap(record))
	sb.WriteString("\n\n")

	sb.WriteString("TOP 10 INTERVIEW QUESTIONS:\n")
	sb.WriteString(Questions(record))
	sb.WriteString("\n")

	return sb.String()
}

// Questions renders the numbered question list.
func Questions(record *types.AnalysisRecord) string {
	lines := make([]string, 0, len(record.Questions))
	for i, q := range record.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}
	return strings.Join(lines, "\n")
}

// Plan renders the 7-day plan as one "Day: Focus" line per entry.
func Plan(record *types.AnalysisRecord) string {
	lines := make([]string, 0, len(record.Plan7Days))
	for _, day := range record.Plan7Days {
		lines = append(lines, fmt.Sprintf("%s: %s", day.Day, day.Focus))
	}
	return strings.Join(lines, "\n")
}

// Roadmap renders the interview rounds as numbered lines with focus areas.
func Roadmap(record *types.AnalysisRecord) string {
	lines := make([]string, 0, len(record.RoundMapping))
	for i, round := range record.RoundMapping {
		lines = append(lines, fmt.Sprintf("Round %d: %s (%s)", i+1, round.RoundTitle, strings.Join(round.FocusAreas, ", ")))
	}
	return strings.Join(lines, "\n")
}

// Submission renders the final submission summary block.
func Submission(sub *types.FinalSubmission) string {
	return fmt.Sprintf(`------------------------------------------
Placement Readiness Platform — Final Submission

Lovable Project: %s
GitHub Repository: %s
Live Deployment: %s

Core Capabilities:
- JD skill extraction (deterministic)
- Round mapping engine
- 7-day prep plan
- Interactive readiness scoring
- History persistence
------------------------------------------`, sub.Lovable, sub.GitHub, sub.Deploy)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename returns the suggested file name for a record's report.
func Filename(record *types.AnalysisRecord) string {
	name := fmt.Sprintf("PlacementPrep_%s_%s.txt", record.Company, record.Role)
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// formatDate renders a stored RFC 3339 timestamp as a short date, falling
// back to the raw string for records written with other formats.
func formatDate(createdAt string) string {
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return ts.Format("Jan 2, 2006")
}
