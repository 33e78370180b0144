package model

import "fmt"

// Class represents the perturbation class that produced a look-alike variant.
// The declaration order doubles as the canonical priority order used for
// deterministic tie-breaking: lower values rank first.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Class int

const (
	// ClassSubstitution indicates a Unicode confusable substitution.
	// Example: Latin "a" replaced by Cyrillic "а". These are the most
	// dangerous variants because they are pixel-identical in many fonts.
	ClassSubstitution Class = iota

	// ClassNeighborTypo indicates a single-key keyboard neighbor typo.
	// Example: "vitalik" -> "vitslik". Less visually deceptive than a
	// homoglyph but highly plausible as a fat-finger registration.
	ClassNeighborTypo

	// ClassDuplication indicates an in-place character duplication.
	// Example: "mydao" -> "myydao". Easy to miss when skimming.
	ClassDuplication

	// ClassOmission indicates a single-character omission.
	// Example: "vitalik" -> "vitaik". Changes the label length, which
	// readers notice more often than same-length edits.
	ClassOmission

	// ClassAdjacentSwap indicates an adjacent-character transposition.
	// Example: "vitalik" -> "vitailk". Same length but visibly reordered.
	ClassAdjacentSwap
)

// Classes lists all perturbation classes in canonical priority order.
func Classes() []Class {
	return []Class{
		ClassSubstitution,
		ClassNeighborTypo,
		ClassDuplication,
		ClassOmission,
		ClassAdjacentSwap,
	}
}

// String returns the class name used in CLI flags, reports, and storage.
func (c Class) String() string {
	switch c {
	case ClassSubstitution:
		return "substitution"
	case ClassNeighborTypo:
		return "neighbor-typo"
	case ClassDuplication:
		return "duplication"
	case ClassOmission:
		return "omission"
	case ClassAdjacentSwap:
		return "adjacent-swap"
	default:
		return "unknown"
	}
}

// Valid reports whether the class is one of the defined constants.
func (c Class) Valid() bool {
	return c >= ClassSubstitution && c <= ClassAdjacentSwap
}

// ParseClass converts a class name into its Class value.
// It returns an error for unrecognized names so that configuration
// mistakes fail fast before any generation work starts.
func ParseClass(name string) (Class, error) {
	for _, c := range Classes() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown perturbation class: %q", name)
}

// MarshalText implements encoding.TextMarshaler so classes serialize
// as their names in JSON output.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ClassInfo contains metadata about a perturbation class: its raw
// confusability weight, a description of the edit, and registration advice.
type ClassInfo struct {
	Weight      float64
	Description string
	Advice      string
}

// classInfoMapping maps perturbation classes to their metadata.
// This centralized mapping ensures consistent risk weighting across the
// application.
//
// Design decision: We use a map rather than embedding the weight in each
// class constant because:
// 1. It allows tuning weights without touching type definitions
// 2. It provides a single source of truth for the class ordering contract
// 3. It feeds the explain command's documentation output
//
// The weights encode the ordering contract
// substitution > neighbor-typo > duplication > omission = adjacent-swap.
var classInfoMapping = map[Class]ClassInfo{
	ClassSubstitution: {
		Weight:      1.0,
		Description: "Unicode look-alike characters swapped in from another script.",
		Advice:      "Highest visual-deception risk. Register or watch the top substitution variants first.",
	},
	ClassNeighborTypo: {
		Weight:      0.75,
		Description: "Single-key keyboard neighbor typo.",
		Advice:      "Plausible fat-finger registrations. Watch variants of short, popular labels.",
	},
	ClassDuplication: {
		Weight:      0.6,
		Description: "One character duplicated in place.",
		Advice:      "Easy to miss when skimming. Consider registering doubled-letter variants.",
	},
	ClassOmission: {
		Weight:      0.5,
		Description: "One character removed.",
		Advice:      "Length change is noticeable; monitor rather than register.",
	},
	ClassAdjacentSwap: {
		Weight:      0.5,
		Description: "Two adjacent characters exchanged.",
		Advice:      "Visibly reordered; monitor rather than register.",
	},
}

// Weight returns the raw confusability weight for the class.
// Unknown classes weigh zero so they can never outrank a defined class.
func (c Class) Weight() float64 {
	if info, ok := classInfoMapping[c]; ok {
		return info.Weight
	}
	return 0
}

// GetClassInfo returns the full metadata for a perturbation class.
// Returns a zero-weight placeholder for unknown classes.
func GetClassInfo(c Class) ClassInfo {
	if info, ok := classInfoMapping[c]; ok {
		return info
	}
	return ClassInfo{
		Description: "Unknown perturbation class.",
		Advice:      "Review manually.",
	}
}
