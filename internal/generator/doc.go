// Package generator implements the per-class look-alike variant
// generators: substitution, neighbor-typo, omission, duplication, and
// adjacent-swap.
//
// Each generator is a pure function of the input label and the read-only
// confusable table. Generate returns a finite iter.Seq that can be
// consumed any number of times and always yields the same candidates in
// the same order, so generators can run on separate goroutines with no
// shared mutable state.
//
// Design decision: We use an interface rather than bare function types
// because:
// 1. It lets the substitution and typo generators carry the table
// 2. It provides a Class() method for logging and deterministic merging
// 3. It mirrors how the engine enumerates enabled classes
package generator
