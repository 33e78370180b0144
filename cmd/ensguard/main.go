// Package main provides the entry point for the ensguard CLI.
//
// ensguard is an offline look-alike generator and risk scorer for
// ENS-style labels. It produces ranked confusable variants, exportable
// watchlists, and run history for drift comparison.
//
// Usage:
//
//	ensguard generate <label>
//	ensguard compare <label>
//
// See --help for all available options.
package main

// main is the entry point for ensguard.
func main() {
	Execute()
}
