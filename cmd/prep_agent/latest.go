package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/prepstack/placement-prep/internal/report"
	"github.com/spf13/cobra"
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent analysis",
	RunE:  runLatest,
}

var latestJSON bool

func init() {
	latestCmd.Flags().BoolVar(&latestJSON, "json", false, "Print the record as JSON")
	rootCmd.AddCommand(latestCmd)
}

func runLatest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	history, closeStore, err := openHistory(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	record, err := history.GetLatestAnalysis(ctx)
	if err != nil {
		return fmt.Errorf("failed to load latest analysis: %w", err)
	}
	if record == nil {
		return fmt.Errorf("no analysis yet, run 'prep_agent analyze' first")
	}

	if latestJSON {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printer := report.NewPrinter(os.Stdout)
	printer.PrintAnalysis(record)
	printer.PrintRoadmap(record)
	return nil
}
