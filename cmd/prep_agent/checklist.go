package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prepstack/placement-prep/internal/ship"
	"github.com/spf13/cobra"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Show the pre-ship self-test checklist",
	RunE:  runChecklist,
}

var checklistToggleCmd = &cobra.Command{
	Use:   "toggle <item-id>",
	Short: "Check or uncheck one checklist item",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistToggle,
}

var checklistResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all checklist progress",
	RunE:  runChecklistReset,
}

func init() {
	checklistCmd.AddCommand(checklistToggleCmd)
	checklistCmd.AddCommand(checklistResetCmd)
	rootCmd.AddCommand(checklistCmd)
}

func openTracker(ctx context.Context) (*ship.Tracker, func(), error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}
	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return ship.NewTracker(st), closeStore, nil
}

func printChecklist(ctx context.Context, tracker *ship.Tracker) error {
	checked, err := tracker.Checked(ctx)
	if err != nil {
		return fmt.Errorf("failed to load checklist: %w", err)
	}

	checkedSet := make(map[int]bool, len(checked))
	for _, id := range checked {
		checkedSet[id] = true
	}

	for _, item := range ship.TestItems() {
		mark := " "
		if checkedSet[item.ID] {
			mark = "x"
		}
		fmt.Printf("[%s] %2d. %s\n", mark, item.ID, item.Label)
		if verbose && item.Hint != "" {
			fmt.Printf("        %s\n", item.Hint)
		}
	}

	fmt.Printf("\n%d/%d passed\n", len(checked), len(ship.TestItems()))
	return nil
}

func runChecklist(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	tracker, closeStore, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	return printChecklist(ctx, tracker)
}

func runChecklistToggle(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid checklist item id %q", args[0])
	}

	ctx := context.Background()

	tracker, closeStore, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, err := tracker.Toggle(ctx, id); err != nil {
		return err
	}
	return printChecklist(ctx, tracker)
}

func runChecklistReset(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	tracker, closeStore, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := tracker.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset checklist: %w", err)
	}
	fmt.Println("Checklist cleared.")
	return nil
}
