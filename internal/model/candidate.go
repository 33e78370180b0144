package model

// Candidate is one generated look-alike variant together with the
// provenance of the edit that produced it.
//
// A candidate is created by exactly one generator invocation. The same
// variant string may be produced by multiple generators (for example a
// digit substitution and a keyboard typo can collide); the engine merges
// such duplicates into a single candidate carrying the highest-weight
// contributing edit per class.
type Candidate struct {
	// Variant is the resulting look-alike string.
	Variant string `json:"variant"`

	// Class is the perturbation class that produced this candidate.
	Class Class `json:"class"`

	// Position is the index of the edit in the normalized label.
	// For multi-position substitutions it is the first edited index.
	Position int `json:"position"`

	// Original is the character that was edited, where applicable.
	// Empty for classes that do not replace a character (duplication).
	Original string `json:"original,omitempty"`

	// Replacement is the character the edit introduced, where applicable.
	// Empty for omission and adjacent-swap.
	Replacement string `json:"replacement,omitempty"`

	// Weight is the raw class weight at generation time.
	// Kept on the candidate so the aggregator can retain the
	// highest-weight explanation per class without re-deriving it.
	Weight float64 `json:"-"`
}

// ScoredCandidate is a Candidate annotated with its confusability score
// and derived display fields. Created by the engine's scorer; immutable
// thereafter.
type ScoredCandidate struct {
	Candidate

	// Score is the visual-confusability score in [0, 1].
	// Higher means a reader is more likely to mistake the variant
	// for the original label.
	Score float64 `json:"score"`

	// Distance is the Levenshtein distance to the normalized label.
	Distance int `json:"distance"`

	// Punycode is the IDNA (xn--...) rendering of the variant, when the
	// variant is a valid IDNA label. Registrars display this form, so it
	// is what a defender would put on a watchlist.
	Punycode string `json:"punycode,omitempty"`

	// Classes lists all perturbation classes that independently produced
	// this variant, in canonical priority order. The embedded Candidate
	// carries the winning (highest-scoring) explanation.
	Classes []Class `json:"classes"`
}
