package generator

import (
	"iter"

	"github.com/kucheran101/ensguard/internal/confusable"
	"github.com/kucheran101/ensguard/internal/model"
)

// maxSubstitutesPerIndex caps how many substitutes a single index
// contributes to the single-edit pass. The curated table rarely exceeds
// this, but custom config entries could; the cap keeps output bounded.
const maxSubstitutesPerIndex = 2

// SubstitutionGenerator emits Unicode confusable substitutions.
//
// For each index it replaces the character with each of its table
// substitutes. It additionally emits capped two-position substitutions
// (the first substitute of each index pair), which cover the common
// attack of swapping in two homoglyphs at once to defeat naive
// single-edit watchlists.
type SubstitutionGenerator struct {
	table *confusable.Table
}

// Class implements Generator.
func (g *SubstitutionGenerator) Class() model.Class {
	return model.ClassSubstitution
}

// Generate implements Generator.
func (g *SubstitutionGenerator) Generate(label *model.Label) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		runes := label.Runes()

		// Single-position substitutions.
		for i, orig := range runes {
			subs := g.table.Lookup(orig)
			if len(subs) > maxSubstitutesPerIndex {
				subs = subs[:maxSubstitutesPerIndex]
			}
			for _, sub := range subs {
				variant := make([]rune, len(runes))
				copy(variant, runes)
				variant[i] = sub
				if !yield(model.Candidate{
					Variant:     string(variant),
					Class:       model.ClassSubstitution,
					Position:    i,
					Original:    string(orig),
					Replacement: string(sub),
					Weight:      model.ClassSubstitution.Weight(),
				}) {
					return
				}
			}
		}

		// Two-position substitutions, first substitute of each index only.
		// Position and original/replacement record the first edit.
		for i := 0; i < len(runes); i++ {
			first := g.table.Lookup(runes[i])
			if len(first) == 0 {
				continue
			}
			for j := i + 1; j < len(runes); j++ {
				second := g.table.Lookup(runes[j])
				if len(second) == 0 {
					continue
				}
				variant := make([]rune, len(runes))
				copy(variant, runes)
				variant[i] = first[0]
				variant[j] = second[0]
				if !yield(model.Candidate{
					Variant:     string(variant),
					Class:       model.ClassSubstitution,
					Position:    i,
					Original:    string(runes[i]),
					Replacement: string(first[0]),
					Weight:      model.ClassSubstitution.Weight(),
				}) {
					return
				}
			}
		}
	}
}
