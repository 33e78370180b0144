package model

import "errors"

// Input validation errors.
// These errors are returned by NewLabel and surface invalid input to the
// caller before any generation work starts.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each call site. This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyLabel is returned when the label is empty after normalization
	// (whitespace trimming and case folding).
	ErrEmptyLabel = errors.New("empty label: nothing left after normalization")

	// ErrControlCharacter is returned when the label contains control
	// characters. Such labels cannot be valid name-service labels and
	// would corrupt report output.
	ErrControlCharacter = errors.New("invalid label: contains control characters")
)
