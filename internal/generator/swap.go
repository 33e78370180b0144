package generator

import (
	"iter"

	"github.com/kucheran101/ensguard/internal/model"
)

// AdjacentSwapGenerator emits adjacent-character transpositions.
// Identical adjacent pairs are skipped because swapping them produces no
// observable change; labels shorter than two characters yield nothing.
type AdjacentSwapGenerator struct{}

// Class implements Generator.
func (AdjacentSwapGenerator) Class() model.Class {
	return model.ClassAdjacentSwap
}

// Generate implements Generator.
func (AdjacentSwapGenerator) Generate(label *model.Label) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		runes := label.Runes()
		for i := 0; i+1 < len(runes); i++ {
			if runes[i] == runes[i+1] {
				continue
			}
			variant := make([]rune, len(runes))
			copy(variant, runes)
			variant[i], variant[i+1] = variant[i+1], variant[i]
			if !yield(model.Candidate{
				Variant:  string(variant),
				Class:    model.ClassAdjacentSwap,
				Position: i,
				Original: string(runes[i]),
				Weight:   model.ClassAdjacentSwap.Weight(),
			}) {
				return
			}
		}
	}
}
