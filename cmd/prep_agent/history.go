package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses, newest first",
	RunE:  runHistory,
}

var historyJSON bool

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print history entries as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	history, closeStore, err := openHistory(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := history.LoadEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if historyJSON {
		records := make([]any, 0, len(entries))
		for _, e := range entries {
			if e.Corrupted {
				records = append(records, map[string]bool{"corrupted": true})
				continue
			}
			records = append(records, e.Record)
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No analyses yet. Run 'prep_agent analyze' first.")
		return nil
	}

	for i, e := range entries {
		if e.Corrupted {
			fmt.Printf("%2d. (corrupted entry)\n", i+1)
			continue
		}
		r := e.Record
		fmt.Printf("%2d. %s - %s  score %d/100  %s  (%s)\n",
			i+1, orUnknown(r.Company), orUnknown(r.Role), r.FinalScore, r.CreatedAt, r.ID)
	}
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}
	return s
}
