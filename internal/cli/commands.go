package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/lcmhl-games/internal/config"
	"github.com/pfrederiksen/lcmhl-games/internal/feed"
	"github.com/pfrederiksen/lcmhl-games/internal/filter"
	"github.com/pfrederiksen/lcmhl-games/internal/game"
	"github.com/pfrederiksen/lcmhl-games/internal/logger"
	"github.com/pfrederiksen/lcmhl-games/internal/storage"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <league>",
		Short: "List the current schedule for a league",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}

	cmd.Flags().StringVar(&flagTeam, "team", "", "Only games involving this team (substring match)")
	cmd.Flags().StringVar(&flagVenue, "venue", "", "Only games at this venue (substring match)")
	cmd.Flags().BoolVar(&flagUpcoming, "upcoming", false, "Only games dated today or later")
	cmd.Flags().BoolVar(&flagWeekends, "weekends", false, "Only Saturday and Sunday games")
	cmd.Flags().StringVar(&flagFrom, "from", "", "Only games on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagTo, "to", "", "Only games on or before this date (YYYY-MM-DD)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	sched, err := fetchSchedule(cmd.Context(), cfg, args[0])
	if err != nil {
		return err
	}

	f, err := filterFromFlags()
	if err != nil {
		return err
	}

	games := f.Apply(sched.Games)
	WriteSchedule(cmd.OutOrStdout(), &game.Schedule{League: sched.League, Games: games})

	for _, g := range games {
		if g.Note != "" {
			logger.Info("schedule annotation", logger.Fields{"key": g.Key, "note": g.Note})
		}
	}
	return nil
}

// filterFromFlags builds the list filter from command flags.
func filterFromFlags() (*filter.Filter, error) {
	f := &filter.Filter{
		WeekendsOnly: flagWeekends,
		UpcomingOnly: flagUpcoming,
	}
	if flagTeam != "" {
		f.Teams = []string{flagTeam}
	}
	if flagVenue != "" {
		f.Venues = []string{flagVenue}
	}
	if flagFrom != "" {
		from, err := time.Parse("2006-01-02", flagFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid --from date: %w", err)
		}
		f.From = &from
	}
	if flagTo != "" {
		to, err := time.Parse("2006-01-02", flagTo)
		if err != nil {
			return nil, fmt.Errorf("invalid --to date: %w", err)
		}
		f.To = &to
	}
	return f, nil
}

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <league>",
		Short: "Fetch a league's schedule and save it as the comparison baseline",
		Args:  cobra.ExactArgs(1),
		RunE:  runSave,
	}
}

func runSave(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	sched, err := fetchSchedule(cmd.Context(), cfg, args[0])
	if err != nil {
		return err
	}

	store, err := storage.New(dataDir(cfg))
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	if err := store.Save(sched); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d games for %s to %s\n",
		len(sched.Games), sched.League, store.Path(sched.League))
	return nil
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <league>",
		Short: "Compare a fresh fetch against the saved baseline",
		Long: `Fetches the league's current schedule and diffs it against the saved
baseline snapshot. Exits 2 when any game was added, removed or changed.`,
		Args: cobra.ExactArgs(1),
		RunE: runCompare,
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	sched, err := fetchSchedule(cmd.Context(), cfg, args[0])
	if err != nil {
		return err
	}

	store, err := storage.New(dataDir(cfg))
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	baseline, err := store.Load(sched.League)
	if err != nil {
		return fmt.Errorf("loading baseline: %w", err)
	}

	changes := game.Diff(sched.RecordMapping(), baseline.RecordMapping())
	WriteChanges(cmd.OutOrStdout(), changes)

	if len(changes) > 0 {
		os.Exit(ExitChanges)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <league>",
		Short: "Export the saved snapshot as an iCalendar document",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the calendar to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	store, err := storage.New(dataDir(cfg))
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	sched, err := store.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	cal, err := feed.BuildCalendar(sched, loc)
	if err != nil {
		return fmt.Errorf("building calendar: %w", err)
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(cal), 0644); err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d games to %s\n", len(sched.Games), flagOutput)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), cal)
	return nil
}
