package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values mirror the CLI flag defaults so that flags, config files,
// and library callers agree on behavior.
const (
	// DefaultMaxResults caps the ranked output at 200 candidates.
	// Substitution alone can produce thousands of variants for longer
	// labels; 200 keeps reports readable while covering everything a
	// registrar or monitoring pipeline realistically acts on.
	DefaultMaxResults = 200

	// DefaultMinScore of 0 keeps every scored candidate. Filtering is
	// opt-in because the long tail of low-score variants is still useful
	// for watchlist generation.
	DefaultMinScore = 0.0

	// AppName is the application name used for XDG directory paths.
	AppName = "ensguard"
)

// Config holds all configuration options for ensguard.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., GenerateConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Labels is the list of labels to analyze.
	// Must contain at least one non-empty label.
	Labels []string

	// MaxResults is the maximum number of ranked candidates to emit.
	// A value of 0 means unbounded output.
	MaxResults int

	// MinScore drops candidates scoring below this threshold.
	// Must be in [0, 1]. A value of 0 keeps everything.
	MinScore float64

	// Classes restricts generation to the named variant classes.
	// Empty means all classes. Names are validated against the known
	// class set before any generation starts.
	Classes []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .ensguard.yaml in the current
	// directory and then in the XDG config directory.
	ConfigFilePath string

	// Customs holds custom confusable and keyboard tables loaded from
	// the config file. This is populated by LoadConfigFile and merged
	// into the built-in tables before generation.
	Customs *File

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport and CSVReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output with tables and a
	// class-distribution pie chart.
	// Mutually exclusive with JSONReport and CSVReport.
	MarkdownReport bool

	// CSVReport enables CSV report output, one candidate per row.
	// Mutually exclusive with JSONReport and MarkdownReport.
	CSVReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// WatchlistFile is the output path for a plain variant list,
	// one variant per line, suitable for feeding into external
	// monitoring tools. Written in addition to the report.
	WatchlistFile string

	// DBDir is the directory path for storing the SQLite database.
	// When set, runs are saved to the database for historical comparison.
	// Defaults to XDG data directory (~/.local/share/ensguard on Linux).
	DBDir string

	// SaveToDB indicates whether to save run results to the database.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (e.g., the result cap).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		MaxResults: DefaultMaxResults,
		MinScore:   DefaultMinScore,
	}
}

// XDGDataDir returns the XDG data directory for ensguard.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/ensguard
// On macOS: ~/Library/Application Support/ensguard
// On Windows: %LOCALAPPDATA%\ensguard
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for ensguard.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/ensguard
// On macOS: ~/Library/Application Support/ensguard
// On Windows: %APPDATA%\ensguard
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any generation begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one label to analyze
	if len(c.Labels) == 0 {
		return ErrNoLabel
	}

	// MaxResults must be non-negative; zero means unbounded
	if c.MaxResults < 0 {
		return ErrInvalidMaxResults
	}

	// MinScore must be a valid score threshold
	if c.MinScore < 0 || c.MinScore > 1 {
		return ErrInvalidMinScore
	}

	// Report formats are mutually exclusive
	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.CSVReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	return nil
}
