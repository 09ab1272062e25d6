package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"reseed/internal/config"
	"reseed/internal/fileutil"
	"reseed/internal/history"
	"reseed/internal/logging"
	"reseed/internal/metainfo"
	"reseed/internal/rewrite"
	"reseed/internal/textutil"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var noHistory bool
	var trackers []string
	var webseeds []string

	cmd := &cobra.Command{
		Use:   "convert <source> <destination>",
		Short: "Rewrite a private torrent for public reseeding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source: %w", err)
			}
			destination, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve destination: %w", err)
			}

			outcome, err := runConversion(conversionRequest{
				source:      source,
				destination: destination,
				trackers:    replacementList(trackers, cfg.Trackers),
				webseeds:    replacementList(webseeds, cfg.Webseeds),
				force:       force,
				overwrite:   cfg.Output.Overwrite,
			})
			if err != nil {
				return err
			}

			logger := logging.NewComponentLogger(ctx.log(), "convert")
			journal := openJournal(cfg, logger, noHistory)
			defer journal.Close()
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

			logger.Info("torrent converted",
				logging.String("source", source),
				logging.String("destination", destination),
				logging.String("infohash", outcome.hashAfter))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Converted %s\n", destination)
			fmt.Fprintf(out, "  Title:     %s\n", outcome.title)
			fmt.Fprintf(out, "  Infohash:  %s -> %s\n", outcome.hashBefore, outcome.hashAfter)
			fmt.Fprintf(out, "  Trackers:  %d\n", outcome.trackers)
			fmt.Fprintf(out, "  Webseeds:  %d\n", outcome.webseeds)
			if !outcome.wasPrivate {
				fmt.Fprintln(out, "  Note:      source was already public (forced)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Convert even when the source is already public")
	cmd.Flags().StringArrayVar(&trackers, "tracker", nil, "Replacement tracker URL (repeatable; overrides config)")
	cmd.Flags().StringArrayVar(&webseeds, "webseed", nil, "Replacement webseed URL (repeatable; overrides config)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip the conversion journal")
	return cmd
}

type conversionRequest struct {
	source      string
	destination string
	trackers    []string
	webseeds    []string
	force       bool
	overwrite   bool
}

type conversionOutcome struct {
	title      string
	hashBefore string
	hashAfter  string
	wasPrivate bool
	trackers   int
	webseeds   int
}

// runConversion executes the decode, rewrite, encode, write sequence for one
// torrent. Nothing is written before every gate has passed, so a refusal or
// failure leaves the destination untouched. On an already-public refusal the
// returned outcome still carries the title and source infohash for
// journaling.
func runConversion(req conversionRequest) (conversionOutcome, error) {
	var out conversionOutcome

	if err := fileutil.CheckWritableDir(filepath.Dir(req.destination)); err != nil {
		return out, fmt.Errorf("%w: %w", errOutputWrite, err)
	}
	if !req.overwrite && fileutil.Exists(req.destination) {
		return out, fmt.Errorf("%w: destination %s already exists (enable [output] overwrite or pick another path)", errOutputWrite, req.destination)
	}

	data, err := os.ReadFile(req.source)
	if err != nil {
		return out, fmt.Errorf("read source: %w", err)
	}

	doc, err := metainfo.Parse(data)
	if err != nil {
		return out, err
	}

	name, err := doc.Name()
	if err != nil {
		return out, err
	}
	out.title = textutil.DisplayTitle(name)

	before, err := doc.InfoHash()
	if err != nil {
		return out, err
	}
	out.hashBefore = metainfo.HashString(before)

	res, err := rewrite.Apply(doc, rewrite.Options{Trackers: req.trackers, Webseeds: req.webseeds})
	if err != nil {
		return out, err
	}
	out.wasPrivate = res.WasPrivate
	out.trackers = res.Trackers
	out.webseeds = res.Webseeds

	if !res.WasPrivate && !req.force {
		return out, fmt.Errorf("%w: %s (use --force to convert anyway)", rewrite.ErrAlreadyPublic, req.source)
	}

	after, err := doc.InfoHash()
	if err != nil {
		return out, err
	}
	out.hashAfter = metainfo.HashString(after)

	if err := fileutil.WriteFileAtomic(req.destination, doc.Encode(), 0o644); err != nil {
		return out, fmt.Errorf("%w: %w", errOutputWrite, err)
	}
	return out, nil
}

// replacementList resolves a repeatable URL flag against its config default.
// Flags win as soon as the flag was used at all; blank values are dropped,
// so passing only blanks selects removal semantics.
func replacementList(flagValues, configValues []string) []string {
	if flagValues == nil {
		return configValues
	}
	cleaned := make([]string, 0, len(flagValues))
	for _, value := range flagValues {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

// openJournal opens the conversion journal unless disabled. A nil return
// means journaling is off for this run; journalEntry tolerates it.
func openJournal(cfg *config.Config, logger *slog.Logger, disabled bool) *history.Store {
	if disabled || cfg == nil || !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("conversion journal unavailable", logging.Error(err))
		return nil
	}
	return store
}

// journalEntry records one journal row. Journal failures are logged and
// swallowed; they never fail a conversion.
func journalEntry(ctx context.Context, store *history.Store, logger *slog.Logger, entry *history.Entry) {
	if store == nil {
		return
	}
	if err := store.Record(ctx, entry); err != nil {
		logger.Warn("failed to journal conversion", logging.Error(err))
	}
}
