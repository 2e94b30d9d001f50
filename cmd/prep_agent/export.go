package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prepstack/placement-prep/internal/report"
	"github.com/prepstack/placement-prep/internal/types"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an analysis as a plain-text report",
	Long:  "Export a saved analysis as a plain-text report covering skills, scores, the 7-day plan, the interview roadmap and the question bank. Defaults to the most recent analysis.",
	RunE:  runExport,
}

var (
	exportID     string
	exportOut    string
	exportStdout bool
)

func init() {
	exportCmd.Flags().StringVar(&exportID, "id", "", "Analysis ID to export (default: latest)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (default: PlacementPrep_<company>_<role>.txt)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Print the report instead of writing a file")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	history, closeStore, err := openHistory(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	var record *types.AnalysisRecord
	if exportID == "" {
		record, err = history.GetLatestAnalysis(ctx)
		if err != nil {
			return fmt.Errorf("failed to load latest analysis: %w", err)
		}
		if record == nil {
			return fmt.Errorf("no analysis yet, run 'prep_agent analyze' first")
		}
	} else {
		entries, err := history.LoadEntries(ctx)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		for _, e := range entries {
			if e.Record != nil && e.Record.ID == exportID {
				record = e.Record
				break
			}
		}
		if record == nil {
			return fmt.Errorf("no analysis with id %s", exportID)
		}
	}

	text := report.Full(record)

	if exportStdout {
		fmt.Print(text)
		return nil
	}

	out := exportOut
	if out == "" {
		out = report.Filename(record)
	}
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Report written to %s\n", out)
	return nil
}
