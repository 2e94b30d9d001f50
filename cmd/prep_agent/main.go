// Package main provides the entry point for the Placement Prep agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prep_agent",
	Short: "Placement readiness agent",
	Long:  "Placement Prep analyzes job descriptions into skill profiles, readiness scores, interview roadmaps and 7-day study plans, and tracks your progress toward shipping.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
