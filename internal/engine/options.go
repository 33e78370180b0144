package engine

import (
	"fmt"

	"github.com/kucheran101/ensguard/internal/model"
)

// Default option values.
const (
	// DefaultMaxResults caps the ranked output. 200 keeps the report
	// readable for typical labels while covering every high-score
	// variant; set MaxResults to 0 for unbounded output.
	DefaultMaxResults = 200

	// DefaultMinScore is the score floor. 0 keeps everything.
	DefaultMinScore = 0.0
)

// Options configures one generation run.
//
// Design decision: Options is a plain value passed per call rather than
// Engine state, so one Engine can serve runs with different settings
// concurrently.
type Options struct {
	// MaxResults caps the returned sequence length after ranking.
	// Zero means unbounded.
	MaxResults int

	// MinScore drops candidates scoring below the floor. An empty
	// result after filtering is a valid outcome, not an error.
	MinScore float64

	// EnabledClasses selects which perturbation classes run.
	// Empty means all classes.
	EnabledClasses []model.Class
}

// DefaultOptions returns the options used when the caller has no
// preferences: default cap, no score floor, all classes enabled.
func DefaultOptions() Options {
	return Options{
		MaxResults: DefaultMaxResults,
		MinScore:   DefaultMinScore,
	}
}

// Validate checks the options and returns a specific error describing
// the first problem found. It is called at the top of GenerateRanked so
// invalid configuration fails before any generator runs.
func (o Options) Validate() error {
	if o.MaxResults < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxResults, o.MaxResults)
	}
	if o.MinScore < 0 || o.MinScore > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidMinScore, o.MinScore)
	}

	seen := make(map[model.Class]bool, len(o.EnabledClasses))
	for _, c := range o.EnabledClasses {
		if !c.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownClass, int(c))
		}
		if seen[c] {
			return fmt.Errorf("%w: %s", ErrDuplicateClass, c)
		}
		seen[c] = true
	}
	return nil
}

// enabledClasses resolves the class selection in canonical priority
// order regardless of the order the caller listed them in.
func (o Options) enabledClasses() []model.Class {
	if len(o.EnabledClasses) == 0 {
		return model.Classes()
	}
	requested := make(map[model.Class]bool, len(o.EnabledClasses))
	for _, c := range o.EnabledClasses {
		requested[c] = true
	}
	out := make([]model.Class, 0, len(requested))
	for _, c := range model.Classes() {
		if requested[c] {
			out = append(out, c)
		}
	}
	return out
}
