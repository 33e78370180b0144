package engine

import "errors"

// Option validation errors.
// These errors are returned by Options.Validate() before any generation
// work starts, so a misconfigured run has no side effects.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidMaxResults is returned when MaxResults is negative.
	// Zero means unbounded; there is no valid meaning for a negative cap.
	ErrInvalidMaxResults = errors.New("invalid max results: must be non-negative (0 means unbounded)")

	// ErrInvalidMinScore is returned when MinScore is outside [0, 1].
	// Scores are normalized into that range, so any other floor is a
	// configuration mistake rather than an aggressive filter.
	ErrInvalidMinScore = errors.New("invalid min score: must be within [0, 1]")

	// ErrUnknownClass is returned when EnabledClasses contains a class
	// value that is not one of the defined perturbation classes.
	ErrUnknownClass = errors.New("unknown perturbation class in enabled classes")

	// ErrDuplicateClass is returned when EnabledClasses lists the same
	// class twice. Duplicates would silently double generation work.
	ErrDuplicateClass = errors.New("duplicate perturbation class in enabled classes")
)
