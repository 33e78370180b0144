// Package model defines the core data structures used throughout ensguard.
//
// This package contains the following main types:
//   - Label: A normalized, validated input label
//   - Class: The perturbation class that produced a variant
//   - Candidate: One generated look-alike variant with its provenance
//   - ScoredCandidate: A candidate annotated with its confusability score
//   - RankedReport: The ordered result of a full generation run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (generator, engine, report, database) need
// to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
