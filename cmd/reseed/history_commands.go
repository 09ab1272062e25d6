package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"reseed/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Conversion journal",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

type historyRow struct {
	ID              string `json:"id"`
	CreatedAt       string `json:"created_at"`
	SourcePath      string `json:"source_path"`
	DestinationPath string `json:"destination_path,omitempty"`
	Title           string `json:"title"`
	InfohashBefore  string `json:"infohash_before,omitempty"`
	InfohashAfter   string `json:"infohash_after,omitempty"`
	Outcome         string `json:"outcome"`
	Trackers        int    `json:"trackers"`
	Webseeds        int    `json:"webseeds"`
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent conversions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Conversion history is disabled ([history] enabled = false)")
				return nil
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list journal: %w", err)
			}

			if asJSON {
				rows := make([]historyRow, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, historyRow{
						ID:              entry.ID,
						CreatedAt:       entry.CreatedAt.UTC().Format(time.RFC3339),
						SourcePath:      entry.SourcePath,
						DestinationPath: entry.DestinationPath,
						Title:           entry.Title,
						InfohashBefore:  entry.InfohashBefore,
						InfohashAfter:   entry.InfohashAfter,
						Outcome:         string(entry.Outcome),
						Trackers:        entry.Trackers,
						Webseeds:        entry.Webseeds,
					})
				}
				return writeJSON(cmd, rows)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.CreatedAt.Local().Format("2006-01-02 15:04"),
					entry.Title,
					string(entry.Outcome),
					strconv.Itoa(entry.Trackers),
					strconv.Itoa(entry.Webseeds),
					entry.DestinationPath,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Created", "Title", "Outcome", "Trackers", "Webseeds", "Destination"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Conversion history is disabled ([history] enabled = false)")
				return nil
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d journal entries\n", removed)
			return nil
		},
	}
}
