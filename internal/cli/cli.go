// Package cli wires configuration, sources, pipeline and sink into the
// dizajnradar command.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/mslovenc/DizajnRadar/internal/aggregate"
	"github.com/mslovenc/DizajnRadar/internal/calendar"
	"github.com/mslovenc/DizajnRadar/internal/config"
	"github.com/mslovenc/DizajnRadar/internal/fetch"
	"github.com/mslovenc/DizajnRadar/internal/logger"
	"github.com/mslovenc/DizajnRadar/internal/metrics"
	"github.com/mslovenc/DizajnRadar/internal/pipeline"
	"github.com/mslovenc/DizajnRadar/internal/sink"
	"github.com/mslovenc/DizajnRadar/internal/sources"
	"github.com/mslovenc/DizajnRadar/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// timeNow is swapped out in tests.
var timeNow = time.Now

var (
	flagDryRun   bool
	flagVerbose  bool
	flagSchedule string
	flagICSPath  string
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dizajnradar",
		Short: "Aggregate design competition listings into one table",
		Long: `Scrapes ~20 design competition sources (associations, directories,
municipal portals), normalizes and deduplicates the results, and replaces
the contents of the remote natjecaji table.

Configured via environment: SUPABASE_URL and SUPABASE_KEY select the REST
store; without a key the run prints a preview table instead of writing.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Preview results without writing to the store")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().StringVar(&flagSchedule, "schedule", "", "Cron expression; keep running and scrape on this schedule")
	cmd.Flags().StringVar(&flagICSPath, "ics", "", "Also write deadlines as an iCalendar file at this path")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, err := logger.New(flagVerbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				log.Error("metrics listener stopped", logger.Error(err))
			}
		}()
	}

	if flagSchedule != "" {
		return runScheduled(cmd.Context(), cfg, log)
	}
	return scrapeOnce(cmd.Context(), cfg, log)
}

// runScheduled keeps the process alive and scrapes on the cron schedule.
// Individual run failures are logged but don't terminate the scheduler.
func runScheduled(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	c := cron.New()
	_, err := c.AddFunc(flagSchedule, func() {
		if err := scrapeOnce(ctx, cfg, log); err != nil {
			log.Error("scheduled run failed", logger.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid --schedule expression %q: %w", flagSchedule, err)
	}

	log.Info("scheduler started", logger.String("schedule", flagSchedule))
	c.Start()
	<-ctx.Done()
	c.Stop()
	return nil
}

func scrapeOnce(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	log.Info("starting scrape")

	fetcher := fetch.New(cfg.FetchTimeout)
	srcs := sources.All(sources.Options{
		StaleAfter:  cfg.StaleAfter,
		ClosedAfter: cfg.ClosedAfter,
	})

	all, err := aggregate.Run(ctx, fetcher, srcs, log)
	if err != nil {
		return err
	}
	log.Info("sources aggregated", logger.Int("total", len(all)))

	final := pipeline.Run(all, timeNow(), pipeline.Options{
		StaleAfter:   cfg.StaleAfter,
		KeyPrefixLen: cfg.DedupPrefix,
	}, log)
	metrics.LastRunRecords.Set(float64(len(final)))

	var dest sink.Sink
	switch {
	case flagDryRun || cfg.DryRun():
		log.Info("no store credential, previewing results")
		dest = sink.NewPreview(os.Stdout)
	case cfg.PostgresDSN != "":
		pg, err := sink.NewPostgres(ctx, cfg.PostgresDSN, log)
		if err != nil {
			return err
		}
		defer pg.Close()
		dest = pg
	default:
		dest = sink.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey, log)
	}

	if err := dest.Replace(ctx, final); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	if flagICSPath != "" {
		ics := calendar.GenerateICS(final, timeNow())
		if err := os.WriteFile(flagICSPath, []byte(ics), 0644); err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
		log.Info("calendar written", logger.String("path", flagICSPath))
	}

	if cfg.ArchiveDir != "" {
		archive, err := storage.New(cfg.ArchiveDir)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		if err := archive.SaveRun(final, timeNow()); err != nil {
			return fmt.Errorf("archiving run: %w", err)
		}
		log.Info("run archived", logger.String("dir", cfg.ArchiveDir))
	}

	log.Info("scrape finished", logger.Int("records", len(final)))
	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
