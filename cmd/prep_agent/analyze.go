package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/prepstack/placement-prep/internal/analysis"
	"github.com/prepstack/placement-prep/internal/ingestion"
	"github.com/prepstack/placement-prep/internal/report"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description into a readiness profile",
	Long:  "Analyze a job description into extracted skills, a readiness score, an interview roadmap, a 7-day plan and likely interview questions. The result is saved as the newest history entry.",
	RunE:  runAnalyze,
}

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJD      string
	analyzeJDFile  string
	analyzeJDURL   string
	analyzeJSON    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Target company name")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role title")
	analyzeCmd.Flags().StringVar(&analyzeJD, "jd", "", "Job description text")
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd-file", "", "Path to a file containing the job description")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL of a job posting to fetch")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full analysis record as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	sources := 0
	for _, set := range []bool{analyzeJD != "", analyzeJDFile != "", analyzeJDURL != ""} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("must provide a job description via --jd, --jd-file or --jd-url")
	}
	if sources > 1 {
		return fmt.Errorf("only one of --jd, --jd-file and --jd-url may be used")
	}

	ctx := context.Background()

	jdText := analyzeJD
	var err error
	switch {
	case analyzeJDFile != "":
		jdText, err = ingestion.FromFile(analyzeJDFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	case analyzeJDURL != "":
		jdText, err = ingestion.FromURL(ctx, analyzeJDURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	}

	warning, err := ingestion.CheckLength(jdText)
	if errors.Is(err, ingestion.ErrJDTooShort) {
		return fmt.Errorf("please paste a longer job description (at least %d characters)", ingestion.MinJDLength)
	}
	if err != nil {
		return err
	}
	if warning != "" {
		fmt.Fprintln(os.Stderr, "Warning: "+warning)
	}

	record := analysis.Analyze(strings.TrimSpace(analyzeCompany), strings.TrimSpace(analyzeRole), jdText)

	history, closeStore, err := openHistory(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := history.SaveAnalysis(ctx, record); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	if analyzeJSON {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printer := report.NewPrinter(os.Stdout)
	printer.PrintAnalysis(record)
	if verbose {
		printer.PrintRoadmap(record)
	}
	fmt.Printf("Saved analysis %s\n", record.ID)
	return nil
}
