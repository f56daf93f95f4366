package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/lcmhl-games/internal/config"
	"github.com/pfrederiksen/lcmhl-games/internal/feed"
	"github.com/pfrederiksen/lcmhl-games/internal/game"
	"github.com/pfrederiksen/lcmhl-games/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitChanges = 2
)

var (
	flagDataDir string
	flagVerbose bool

	// list filters
	flagTeam     string
	flagVenue    string
	flagUpcoming bool
	flagWeekends bool
	flagFrom     string
	flagTo       string

	// export
	flagOutput string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lcmhl-games",
		Short: "Fetch, snapshot and compare LCMHL game schedules",
		Long: `A CLI tool for tracking LCMHL game schedules.
Fetches a division's published calendar feed, extracts game records from the
event descriptions, and lists them, saves them as a baseline snapshot, or
compares them against the baseline to surface schedule changes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots (default from config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd(), newSaveCmd(), newCompareCmd(), newExportCmd())

	return cmd
}

// dataDir resolves the snapshot directory: the flag wins over config.
func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return cfg.DataDir
}

// fetchSchedule drives the fetch-then-parse pass shared by list, save and
// compare: resolve the league's feed (before any network activity), fetch
// it once, and build a schedule from the events that parse as games.
func fetchSchedule(ctx context.Context, cfg config.Config, league string) (*game.Schedule, error) {
	league = config.NormalizeLeague(league)

	f, err := cfg.Feed(league)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logger.Debug("fetching feed", logger.Fields{"league": league, "url": f.URL, "source": string(f.Source)})

	client := feed.New(loc)
	started := time.Now()
	events, err := client.Fetch(ctx, f.URL, f.Source)
	if err != nil {
		return nil, err
	}
	logger.RecordTiming("feed.fetch", time.Since(started))
	logger.AddCounter("events.fetched", int64(len(events)))

	sched, skipped, err := scheduleFromEvents(league, events)
	if err != nil {
		return nil, err
	}

	logger.Debug("parsed schedule", logger.Fields{
		"league":  league,
		"games":   len(sched.Games),
		"skipped": skipped,
	})
	if flagVerbose {
		logger.Debug("run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	}

	return sched, nil
}

// scheduleFromEvents turns raw feed events into a schedule. Events whose
// descriptions match no known pattern are skipped and logged; any other
// failure aborts the pass.
func scheduleFromEvents(league string, events []feed.Event) (*game.Schedule, int, error) {
	sched := &game.Schedule{League: league}
	skipped := 0

	for _, ev := range events {
		parsed, err := game.ParseDescription(ev.Description)
		if err != nil {
			if errors.Is(err, game.ErrUnparsedDescription) {
				skipped++
				logger.IncrCounter("parse.skipped")
				logger.Warn("skipping event with unrecognized description", logger.Fields{
					"description": ev.Description,
				})
				continue
			}
			return nil, skipped, err
		}

		rec, err := game.NewRecord(league, parsed, ev.Start, ev.Location)
		if err != nil {
			return nil, skipped, fmt.Errorf("building record for %q: %w", ev.Description, err)
		}
		sched.Games = append(sched.Games, rec)
	}

	return sched, skipped, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
