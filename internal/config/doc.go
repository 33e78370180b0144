// Package config provides configuration structures and utilities for ensguard.
// It defines the main options for variant generation, scoring thresholds,
// report output preferences, and custom confusable tables loaded from
// .ensguard.yaml files.
package config
