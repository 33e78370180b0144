// Package engine orchestrates a full generation run: it fans the enabled
// variant generators out in parallel, aggregates their output with
// dedup-and-merge semantics, scores every surviving candidate, and ranks
// the result deterministically.
//
// The single entry point is Engine.GenerateRanked. Everything it touches
// is either read-only (the confusable table) or local to the call, so one
// Engine can serve concurrent callers.
//
// Design decision: Generators run under an errgroup, but their outputs
// are collected per class and merged strictly in canonical class-priority
// order. Aggregation therefore never observes goroutine scheduling, and
// two runs over the same input produce byte-identical ranked output
// whether or not they ran in parallel.
package engine
