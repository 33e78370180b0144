package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and LoadConfigFile() and
// provide specific information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoLabel is returned when no label is specified.
	// This error occurs when neither a positional argument nor the
	// config file provides a label to analyze.
	ErrNoLabel = errors.New("no label specified: provide a label to analyze")

	// ErrInvalidMaxResults is returned when the result cap is negative.
	// Use 0 for unbounded output.
	ErrInvalidMaxResults = errors.New("invalid max results: must be non-negative")

	// ErrInvalidMinScore is returned when the score threshold is outside [0, 1].
	ErrInvalidMinScore = errors.New("invalid min score: must be between 0 and 1")

	// ErrConflictingReportFormats is returned when more than one of
	// --json, --markdown, and --csv is specified. Only one output format
	// can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json, --markdown, and --csv cannot be combined")

	// ErrInvalidConfusableEntry is returned when a custom confusable
	// mapping in the config file uses a key or substitute that is not
	// exactly one character.
	ErrInvalidConfusableEntry = errors.New("invalid confusable entry: keys and substitutes must be single characters")

	// ErrInvalidNeighborEntry is returned when a custom keyboard
	// adjacency mapping in the config file uses a key or neighbor that
	// is not exactly one character.
	ErrInvalidNeighborEntry = errors.New("invalid neighbor entry: keys and neighbors must be single characters")
)
