package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/prepstack/placement-prep/internal/analysis"
	"github.com/prepstack/placement-prep/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxWeakSkills is how many focus suggestions to surface
	maxWeakSkills = 3
)

// Printer handles formatted terminal output for analysis results.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an analysis record.
func (p *Printer) PrintAnalysis(record *types.AnalysisRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", record.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", record.Role))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", record.CompanyIntel.Industry))
	sb.WriteString(fmt.Sprintf("Size:     %s\n", record.CompanyIntel.Size))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Base Score:  %d/100\n", record.BaseScore))
	sb.WriteString(fmt.Sprintf("Final Score: %d/100\n", record.FinalScore))
	sb.WriteString("\n")

	sb.WriteString("Skills:\n")
	for _, cat := range record.ExtractedSkills.Categories() {
		if len(cat.Skills) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s: %s\n", cat.Label, strings.Join(cat.Skills, ", ")))
	}

	weak := analysis.WeakSkills(record, maxWeakSkills)
	if len(weak) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Focus next: %s\n", strings.Join(weak, ", ")))
	}

	p.printBox("READINESS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the interview rounds with their rationale.
func (p *Printer) PrintRoadmap(record *types.AnalysisRecord) {
	if record == nil || len(record.RoundMapping) == 0 {
		return
	}

	var sb strings.Builder
	for i, round := range record.RoundMapping {
		sb.WriteString(fmt.Sprintf("Round %d: %s\n", i+1, round.RoundTitle))
		sb.WriteString(fmt.Sprintf("  Focus: %s\n", strings.Join(round.FocusAreas, ", ")))
		sb.WriteString(fmt.Sprintf("  Why:   %s\n", round.WhyItMatters))
		if i < len(record.RoundMapping)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERVIEW ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}
