// Package confusable provides the static lookup tables behind variant
// generation: cross-script homoglyph substitutes, QWERTY keyboard
// adjacency, and pairwise visual-similarity factors.
//
// Design decision: The tables live in an explicitly-constructed, immutable
// Table object rather than package-level globals. The table is built once
// at process start, optionally extended with entries from the user's
// configuration file, and then shared read-only across parallel generator
// execution without synchronization.
//
// The confusable data is a small, curated, high-signal set rather than the
// full Unicode confusables table: exhaustive tables are noisy for short
// lowercase name-service labels.
package confusable
