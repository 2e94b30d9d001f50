package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepstack/placement-prep/internal/store"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <analysis-id> <skill>",
	Short: "Flip a skill between 'know' and 'practice' and re-score",
	Long:  "Flip one extracted skill's confidence on a saved analysis. Skills marked 'know' raise the final score, skills marked 'practice' lower it.",
	Args:  cobra.ExactArgs(2),
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(_ *cobra.Command, args []string) error {
	id, skill := args[0], args[1]

	ctx := context.Background()

	history, closeStore, err := openHistory(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	record, err := history.ToggleSkillConfidence(ctx, id, skill)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("no analysis with id %s", id)
		}
		return fmt.Errorf("failed to update analysis: %w", err)
	}

	fmt.Printf("%s -> %s\n", skill, record.SkillConfidenceMap[skill])
	fmt.Printf("Final score: %d/100 (base %d)\n", record.FinalScore, record.BaseScore)
	return nil
}
