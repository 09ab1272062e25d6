package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"reseed/internal/config"
	"reseed/internal/fileutil"
	"reseed/internal/history"
	"reseed/internal/logging"
	"reseed/internal/rewrite"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var noHistory bool
	var trackers []string
	var webseeds []string

	cmd := &cobra.Command{
		Use:   "batch <source-dir> <destination-dir>",
		Short: "Convert every torrent in a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			sourceDir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source directory: %w", err)
			}
			destDir, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve destination directory: %w", err)
			}

			info, err := os.Stat(sourceDir)
			if err != nil {
				return fmt.Errorf("source directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("source %s is not a directory", sourceDir)
			}
			if err := fileutil.CheckWritableDir(destDir); err != nil {
				return fmt.Errorf("%w: %w", errOutputWrite, err)
			}

			lock := flock.New(filepath.Join(destDir, ".reseed.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire batch lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another reseed batch is already writing to %s", destDir)
			}
			defer func() { _ = lock.Unlock() }()

			matches, err := filepath.Glob(filepath.Join(sourceDir, "*.torrent"))
			if err != nil {
				return fmt.Errorf("scan source directory: %w", err)
			}
			sort.Strings(matches)

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No torrent files found in %s\n", sourceDir)
				return nil
			}

			logger := logging.NewComponentLogger(ctx.log(), "batch")
			journal := openJournal(cfg, logger, noHistory)
			defer journal.Close()

			colorize := shouldColorize(out)
			repTrackers := replacementList(trackers, cfg.Trackers)
			repWebseeds := replacementList(webseeds, cfg.Webseeds)

			var converted, skipped int
			rows := make([][]string, 0, len(matches))
			for _, source := range matches {
				name := filepath.Base(source)
				destination := filepath.Join(destDir, name)

				outcome, err := runConversion(conversionRequest{
					source:      source,
					destination: destination,
					trackers:    repTrackers,
					webseeds:    repWebseeds,
					force:       force,
					overwrite:   cfg.Output.Overwrite,
				})
				switch {
				case err == nil:
					converted++
					fmt.Fprintln(out, renderStatusLine(name, statusOK, "converted", colorize))
					journalEntry(cmd.Context(), journal, logger, &history.Entry{
						SourcePath:      source,
						DestinationPath: destination,
						Title:           outcome.title,
						InfohashBefore:  outcome.hashBefore,
						InfohashAfter:   outcome.hashAfter,
						Outcome:         history.OutcomeConverted,
						Trackers:        outcome.trackers,
						Webseeds:        outcome.webseeds,
					})
					rows = append(rows, []string{name, "converted", strconv.Itoa(outcome.trackers), strconv.Itoa(outcome.webseeds)})
				case errors.Is(err, rewrite.ErrAlreadyPublic):
					skipped++
					fmt.Fprintln(out, renderStatusLine(name, statusWarn, "skipped (already public)", colorize))
					logger.Warn("skipping torrent without private flag", logging.String("source", source))
					journalEntry(cmd.Context(), journal, logger, &history.Entry{
						SourcePath:     source,
						Title:          outcome.title,
						InfohashBefore: outcome.hashBefore,
						Outcome:        history.OutcomeAlreadyPublic,
					})
					rows = append(rows, []string{name, "skipped", "-", "-"})
				default:
					fmt.Fprintln(out, renderStatusLine(name, statusError, err.Error(), colorize))
					return fmt.Errorf("convert %s: %w", source, err)
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Outcome", "Trackers", "Webseeds"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(out, "Converted %d, skipped %d of %d torrent files\n", converted, skipped, len(matches))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Convert torrents that are already public instead of skipping them")
	cmd.Flags().StringArrayVar(&trackers, "tracker", nil, "Replacement tracker URL (repeatable; overrides config)")
	cmd.Flags().StringArrayVar(&webseeds, "webseed", nil, "Replacement webseed URL (repeatable; overrides config)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip the conversion journal")
	return cmd
}
