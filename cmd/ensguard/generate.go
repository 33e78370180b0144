package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kucheran101/ensguard/internal/config"
	"github.com/kucheran101/ensguard/internal/confusable"
	"github.com/kucheran101/ensguard/internal/database"
	"github.com/kucheran101/ensguard/internal/engine"
	"github.com/kucheran101/ensguard/internal/log"
	"github.com/kucheran101/ensguard/internal/model"
	"github.com/kucheran101/ensguard/internal/report"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [label...]",
		Short: "Generate ranked look-alike variants for one or more labels",
		Long: `Generate produces the look-alike variants of a label and ranks them by
confusability.

Variants come from five classes:
- substitution: Unicode look-alike characters swapped in
- neighbor-typo: single-key keyboard neighbor typos
- duplication: one character doubled
- omission: one character dropped
- adjacent-swap: two adjacent characters swapped

Examples:
  # Generate variants for a single label
  ensguard generate vitalik

  # Generate for multiple labels
  ensguard generate vitalik uniswap mydao

  # Cap output and filter by score
  ensguard generate --max 50 --min-score 0.5 vitalik

  # Restrict to specific classes
  ensguard generate --classes substitution,omission vitalik

  # Export formats
  ensguard generate --json -o report.json vitalik
  ensguard generate --csv -o variants.csv vitalik
  ensguard generate --watchlist watch.txt vitalik

  # Save the run for later comparison
  ensguard generate --save vitalik

Configuration file (.ensguard.yaml) example:
  maxResults: 100
  minScore: 0.3
  confusables:
    a: ["@"]
  neighbors:
    q: ["1"]`,
		Args: cobra.ArbitraryArgs,
		RunE: runGenerateCmd,
	}

	// Generation flags
	cmd.Flags().IntP("max", "n", config.DefaultMaxResults,
		"Maximum number of ranked variants to output (0 for unbounded)")
	cmd.Flags().Float64P("min-score", "s", config.DefaultMinScore,
		"Drop variants scoring below this threshold (0..1)")
	cmd.Flags().StringSliceP("classes", "C", nil,
		"Restrict generation to the named classes (default: all)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .ensguard.yaml in current or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown and --csv)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json and --csv)")
	cmd.Flags().Bool("csv", false,
		"Output CSV report (mutually exclusive with --json and --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().StringP("watchlist", "w", "",
		"Also write a plain watchlist (one variant per line) to this path")

	// Persistence flags
	cmd.Flags().Bool("save", false,
		"Save the run to the database for later comparison")
	cmd.Flags().String("db-dir", "",
		"Database directory (default: XDG data directory)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runGenerate(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. CLI flags take precedence over file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.MaxResults, err = cmd.Flags().GetInt("max")
	if err != nil {
		return nil, err
	}

	cfg.MinScore, err = cmd.Flags().GetFloat64("min-score")
	if err != nil {
		return nil, err
	}

	cfg.Classes, err = cmd.Flags().GetStringSlice("classes")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load custom tables and defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently continue when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Customs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// File values apply only where the corresponding flag was not set.
	if cfg.Customs != nil {
		if !cmd.Flags().Changed("max") && cfg.Customs.MaxResults > 0 {
			cfg.MaxResults = cfg.Customs.MaxResults
		}
		if !cmd.Flags().Changed("min-score") && cfg.Customs.MinScore > 0 {
			cfg.MinScore = cfg.Customs.MinScore
		}
		if !cmd.Flags().Changed("classes") && len(cfg.Customs.Classes) > 0 {
			cfg.Classes = cfg.Customs.Classes
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.CSVReport, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.WatchlistFile, err = cmd.Flags().GetString("watchlist")
	if err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the labels to analyze
	cfg.Labels = args

	return cfg, nil
}

// runGenerate executes the generation for all configured labels.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	classes, err := parseClasses(cfg.Classes)
	if err != nil {
		return err
	}

	opts := engine.Options{
		MaxResults:     cfg.MaxResults,
		MinScore:       cfg.MinScore,
		EnabledClasses: classes,
	}

	eng := engine.New(buildTable(cfg), engine.WithLogger(logger))

	// Open database connection if saving is enabled
	var db *database.WatchDB
	if cfg.SaveToDB {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Debug("database opened", "dir", cfg.DBDir)
	}

	for _, label := range cfg.Labels {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rankedReport, err := eng.GenerateRanked(ctx, label, opts)
		if err != nil {
			return fmt.Errorf("generation failed for %q: %w", label, err)
		}

		if err := outputReport(cfg, rankedReport); err != nil {
			return fmt.Errorf("report failed for %q: %w", label, err)
		}

		if cfg.WatchlistFile != "" {
			if err := writeWatchlist(cfg.WatchlistFile, rankedReport); err != nil {
				return fmt.Errorf("watchlist failed for %q: %w", label, err)
			}
			fmt.Printf("Watchlist written: %s\n", cfg.WatchlistFile)
		}

		if db != nil {
			runID, err := db.SaveRun(ctx, rankedReport)
			if err != nil {
				return fmt.Errorf("failed to save run for %q: %w", label, err)
			}
			logger.Debug("run saved", "label", rankedReport.Normalized, "runID", runID)
			fmt.Printf("Run saved with ID %d (compare later with 'ensguard compare %s')\n",
				runID, rankedReport.Normalized)
		}
	}

	return nil
}

// parseClasses converts class names to their typed form.
func parseClasses(names []string) ([]model.Class, error) {
	if len(names) == 0 {
		return nil, nil
	}
	classes := make([]model.Class, 0, len(names))
	for _, name := range names {
		class, err := model.ParseClass(name)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, nil
}

// buildTable builds the confusable table, merging in any custom entries
// from the configuration file.
func buildTable(cfg *config.Config) *confusable.Table {
	var opts []confusable.Option
	if cfg.Customs != nil {
		if customs := cfg.Customs.ConfusableRunes(); customs != nil {
			opts = append(opts, confusable.WithSubstitutes(customs))
		}
		if neighbors := cfg.Customs.NeighborRunes(); neighbors != nil {
			opts = append(opts, confusable.WithNeighbors(neighbors))
		}
	}
	return confusable.New(opts...)
}

// outputReport outputs the ranked report in the requested format.
func outputReport(cfg *config.Config, rankedReport *model.RankedReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		f, err := createOutputFile(cfg.ReportFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	case cfg.CSVReport:
		writer = report.NewCSVWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(rankedReport)
	return err
}

// createOutputFile creates the output file and any missing parent
// directories with restrictive permissions.
func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// writeWatchlist writes the plain variant list to a file.
func writeWatchlist(path string, rankedReport *model.RankedReport) error {
	f, err := createOutputFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = report.NewWatchlistWriter(f).Write(rankedReport)
	return err
}
