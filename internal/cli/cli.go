package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/courtgrid/courtgrid/internal/config"
	"github.com/courtgrid/courtgrid/internal/fetcher"
	"github.com/courtgrid/courtgrid/internal/grid"
	"github.com/courtgrid/courtgrid/internal/legend"
	"github.com/courtgrid/courtgrid/internal/logger"
	"github.com/courtgrid/courtgrid/internal/pipeline"
	"github.com/courtgrid/courtgrid/internal/snapshot"
	"github.com/courtgrid/courtgrid/internal/store"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagVerbose bool

	flagInput    string
	flagLegend   string
	flagTimezone string
	flagFormat   string
	flagStore    string
	flagStrict   bool

	flagSources string
	flagOutput  string
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courtgrid",
		Short: "Turn booking-calendar snapshots into structured availability records",
		Long: `courtgrid converts raw HTML snapshots of a venue's booking calendar into
normalized, timezone-correct availability records: one record per court per
hourly time slot per day.`,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "courtgrid.yaml", "Pipeline config file")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newParseCmd(), newFetchCmd())
	return cmd
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse one raw snapshot into booking records",
		RunE:  runParse,
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "Snapshot JSON file, or '-' for stdin (required)")
	cmd.Flags().StringVar(&flagLegend, "legend", "", "Colour legend file (overrides config)")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "Venue IANA time zone (overrides config)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagStore, "store", "", "SQLite database to insert records into")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail on duplicate slot labels and surplus statuses")

	cmd.MarkFlagRequired("input")

	return cmd
}

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all configured sources and archive raw snapshots",
		RunE:  runFetch,
	}

	cmd.Flags().StringVar(&flagSources, "sources", "config/sources.json", "Sources JSON file")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Snapshot archive directory (overrides env)")

	return cmd
}

func setupLogging() {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}
}

// runParse is the parse command logic.
func runParse(cmd *cobra.Command, args []string) error {
	setupLogging()

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagTimezone != "" {
		cfg.Venue.Timezone = flagTimezone
	}
	if flagLegend != "" {
		cfg.Legend.Path = flagLegend
	}
	if flagStrict {
		cfg.Strict.DuplicateSlots = true
		cfg.Strict.SurplusStatuses = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	lgd, err := legend.LoadFile(cfg.Legend.Path)
	if err != nil {
		return fmt.Errorf("loading legend: %w", err)
	}

	snap, err := readSnapshot(flagInput)
	if err != nil {
		return err
	}

	logger.Debug("parsing snapshot", logger.Fields{
		"source":      snap.Source,
		"http_status": snap.HTTPStatus,
	})

	records, err := pipeline.Run(snap, lgd, loc, pipeline.Options{
		Address: grid.TableAddress{
			Outer:  cfg.Locator.OuterTable,
			Nested: cfg.Locator.NestedTable,
		},
		StrictDuplicates: cfg.Strict.DuplicateSlots,
		StrictSurplus:    cfg.Strict.SurplusStatuses,
	})
	if err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	if flagStore != "" {
		st, err := store.Open(flagStore)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		if err := st.InsertRecords(cmd.Context(), records); err != nil {
			return fmt.Errorf("storing records: %w", err)
		}
		logger.Info("stored records", logger.Fields{
			"store": flagStore,
			"count": len(records),
		})
	}

	result := &OutputResult{
		Source:      snap.Source,
		URL:         snap.URL,
		ScrapedAt:   snap.ScrapedAt,
		RecordCount: len(records),
		Records:     records,
	}
	return WriteOutput(os.Stdout, result, format)
}

// runFetch is the fetch command logic.
func runFetch(cmd *cobra.Command, args []string) error {
	setupLogging()

	fcfg, err := fetcher.LoadConfig()
	if err != nil {
		return err
	}
	if flagOutput != "" {
		fcfg.OutputDir = flagOutput
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	sources, err := fetcher.LoadSources(flagSources)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no sources configured in %s", flagSources)
	}

	f := fetcher.New(fcfg, loc)
	w := fetcher.NewWriter(fcfg.OutputDir)

	failed := 0
	for _, snap := range f.FetchAll(cmd.Context(), sources) {
		path, err := w.Write(snap)
		if err != nil {
			return fmt.Errorf("archiving snapshot for %s: %w", snap.Source, err)
		}
		logger.Debug("archived snapshot", logger.Fields{"path": path})
		if snap.Status != fetcher.StatusSuccess {
			failed++
		}
	}

	fmt.Printf("Fetched %d sources (%d failed), snapshots under %s\n",
		len(sources), failed, fcfg.OutputDir)
	return nil
}

// readSnapshot reads the snapshot from a file or stdin.
func readSnapshot(input string) (*snapshot.Snapshot, error) {
	if input == "-" {
		return snapshot.Decode(os.Stdin)
	}
	return snapshot.DecodeFile(input)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
