package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// folder case-folds labels the way name services compare them.
// cases.Fold handles full Unicode case folding, not just ASCII lowercasing.
var folder = cases.Fold()

// Label is a validated, normalized input label.
// The zero value is not usable; construct labels with NewLabel.
//
// Design decision: Label is immutable once constructed. The rune slice is
// private and only handed out as a copy, so generators can index into the
// label freely while sharing one instance across goroutines without
// synchronization.
type Label struct {
	// original is the input exactly as the caller provided it.
	original string

	// normalized is the trimmed, case-folded, NFC-normalized form.
	// All generation and comparison happens on this form.
	normalized string

	// runes is the normalized form as an index-addressable sequence.
	runes []rune
}

// NewLabel validates and normalizes a raw label.
//
// Normalization trims surrounding whitespace, applies Unicode case folding,
// and canonicalizes to NFC so that byte-equality on variants is meaningful.
// It returns ErrEmptyLabel if nothing remains after normalization and
// ErrControlCharacter if the input contains control characters.
func NewLabel(raw string) (*Label, error) {
	for _, r := range raw {
		if unicode.IsControl(r) {
			return nil, ErrControlCharacter
		}
	}

	normalized := norm.NFC.String(folder.String(strings.TrimSpace(raw)))
	if normalized == "" {
		return nil, ErrEmptyLabel
	}

	return &Label{
		original:   raw,
		normalized: normalized,
		runes:      []rune(normalized),
	}, nil
}

// Original returns the label exactly as the caller provided it.
func (l *Label) Original() string {
	return l.original
}

// Normalized returns the normalized form used for generation.
func (l *Label) Normalized() string {
	return l.normalized
}

// String returns the normalized form.
func (l *Label) String() string {
	return l.normalized
}

// Len returns the number of runes in the normalized label.
func (l *Label) Len() int {
	return len(l.runes)
}

// Rune returns the rune at index i of the normalized label.
func (l *Label) Rune(i int) rune {
	return l.runes[i]
}

// Runes returns a copy of the normalized rune sequence.
// Callers may mutate the returned slice freely.
func (l *Label) Runes() []rune {
	out := make([]rune, len(l.runes))
	copy(out, l.runes)
	return out
}
