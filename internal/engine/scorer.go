package engine

import (
	"golang.org/x/net/idna"

	"github.com/kucheran101/ensguard/internal/confusable"
	"github.com/kucheran101/ensguard/internal/model"
)

// positionPenalty controls how much later edit positions reduce the
// score. Readers anchor on prefixes, so an edit at the first character
// keeps the full class weight while an edit at the end loses up to 15%.
const positionPenalty = 0.15

// scoreAggregate computes the confusability score for one aggregated
// variant and returns the fully-annotated candidate.
//
// Each contributing class is scored independently as
// weight x positional factor x pairwise similarity, and the variant
// takes the maximum, never the sum: two weak explanations of the same
// string do not add up to a strong one. The winning explanation's
// metadata is kept on the candidate; ties fall to the higher-priority
// class, which is the iteration order of agg.classes.
func scoreAggregate(table *confusable.Table, label *model.Label, agg *aggregate) model.ScoredCandidate {
	var (
		bestScore float64
		winner    model.Candidate
	)

	for i, class := range agg.classes {
		c := agg.best[class]
		score := scoreCandidate(table, label, c)
		if i == 0 || score > bestScore {
			bestScore = score
			winner = c
		}
	}

	classes := make([]model.Class, len(agg.classes))
	copy(classes, agg.classes)

	return model.ScoredCandidate{
		Candidate: winner,
		Score:     bestScore,
		Distance:  levenshtein(label.Normalized(), agg.variant),
		Punycode:  punycode(agg.variant),
		Classes:   classes,
	}
}

// scoreCandidate scores a single edit explanation.
// The three factors are non-negative and the similarity/positional
// factors are independent of the class weight, so holding position and
// similarity constant the score is monotonic in class weight.
func scoreCandidate(table *confusable.Table, label *model.Label, c model.Candidate) float64 {
	score := c.Weight * positionFactor(c.Position, label.Len()) * similarityFactor(table, c)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// positionFactor weighs edits earlier in the label slightly higher.
func positionFactor(position, length int) float64 {
	if length <= 1 {
		return 1
	}
	return 1 - positionPenalty*float64(position)/float64(length)
}

// similarityFactor applies the pairwise character similarity for classes
// that replace a character; structural edits are similarity-neutral.
func similarityFactor(table *confusable.Table, c model.Candidate) float64 {
	switch c.Class {
	case model.ClassSubstitution, model.ClassNeighborTypo:
		orig := []rune(c.Original)
		repl := []rune(c.Replacement)
		if len(orig) == 0 || len(repl) == 0 {
			return 1
		}
		return table.Similarity(orig[0], repl[0])
	default:
		return 1
	}
}

// punycode renders a variant as its IDNA ASCII-compatible (xn--...)
// form, which is what registrars and resolvers display. Variants that
// are not valid IDNA labels render as empty and are omitted from
// reports.
func punycode(variant string) string {
	ascii, err := idna.Lookup.ToASCII(variant)
	if err != nil {
		return ""
	}
	return ascii
}

// levenshtein computes the edit distance between two strings over runes.
// Single-row dynamic programming; both inputs are short labels.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, len(rb)+1)

	for i, ca := range ra {
		curr[0] = i + 1
		for j, cb := range rb {
			ins := prev[j+1] + 1
			del := curr[j] + 1
			sub := prev[j]
			if ca != cb {
				sub++
			}
			curr[j+1] = min(ins, del, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
