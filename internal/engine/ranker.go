package engine

import (
	"sort"

	"github.com/kucheran101/ensguard/internal/model"
)

// rankCandidates sorts scored candidates into the final output order:
// descending score, then class priority (substitution first), then edit
// position ascending, then variant lexicographically.
//
// The comparator chain is total over distinct variants, so the ranking
// is fully deterministic for identical inputs; no randomness exists
// anywhere in the pipeline.
func rankCandidates(candidates []model.ScoredCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Class != b.Class {
			return a.Class < b.Class
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.Variant < b.Variant
	})
}
