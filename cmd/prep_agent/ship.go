package main

import (
	"context"
	"fmt"

	"github.com/prepstack/placement-prep/internal/report"
	"github.com/spf13/cobra"
)

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Track final submission links and the ship gate",
}

var shipStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the project is ready to ship",
	RunE:  runShipStatus,
}

var shipSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Save the final submission links",
	Long:  "Save the three final submission links. Links are stored even when invalid; validation gates shipping, not saving.",
	RunE:  runShipSubmit,
}

var (
	submitLovable string
	submitGitHub  string
	submitDeploy  string
)

func init() {
	shipSubmitCmd.Flags().StringVar(&submitLovable, "lovable", "", "Lovable project URL")
	shipSubmitCmd.Flags().StringVar(&submitGitHub, "github", "", "GitHub repository URL")
	shipSubmitCmd.Flags().StringVar(&submitDeploy, "deploy", "", "Deployed app URL")

	shipCmd.AddCommand(shipStatusCmd)
	shipCmd.AddCommand(shipSubmitCmd)
	rootCmd.AddCommand(shipCmd)
}

func runShipStatus(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	tracker, closeStore, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	status, err := tracker.Evaluate(ctx)
	if err != nil {
		return fmt.Errorf("failed to evaluate ship status: %w", err)
	}

	fmt.Printf("Self-tests: %d/10", status.PassCount)
	if status.TestsPassed {
		fmt.Print(" (passed)")
	}
	fmt.Println()

	printLink := func(label, value, field string) {
		switch {
		case value == "":
			fmt.Printf("%-8s (missing)\n", label+":")
		case status.LinkErrors[field] != "":
			fmt.Printf("%-8s %s  [%s]\n", label+":", value, status.LinkErrors[field])
		default:
			fmt.Printf("%-8s %s\n", label+":", value)
		}
	}
	printLink("Lovable", status.Submission.Lovable, "lovable")
	printLink("GitHub", status.Submission.GitHub, "github")
	printLink("Deploy", status.Submission.Deploy, "deploy")

	if status.Shipped {
		fmt.Println("\nShipped. All tests passed and every link is in place.")
	} else {
		fmt.Println("\nNot shipped yet.")
	}
	return nil
}

func runShipSubmit(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	tracker, closeStore, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	// Start from the stored links so single-flag updates keep the rest.
	sub, err := tracker.Submission(ctx)
	if err != nil {
		return fmt.Errorf("failed to load submission: %w", err)
	}
	if submitLovable != "" {
		sub.Lovable = submitLovable
	}
	if submitGitHub != "" {
		sub.GitHub = submitGitHub
	}
	if submitDeploy != "" {
		sub.Deploy = submitDeploy
	}

	if err := tracker.SaveSubmission(ctx, sub); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	for field, msg := range sub.FieldErrors() {
		fmt.Printf("Warning: %s: %s\n", field, msg)
	}

	fmt.Print(report.Submission(sub))
	return nil
}
