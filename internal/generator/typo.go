package generator

import (
	"iter"

	"github.com/kucheran101/ensguard/internal/confusable"
	"github.com/kucheran101/ensguard/internal/model"
)

// NeighborTypoGenerator emits single-key keyboard neighbor typos.
// Same shape as single-position substitution, but over the keyboard
// adjacency table and with the lower neighbor-typo class weight.
type NeighborTypoGenerator struct {
	table *confusable.Table
}

// Class implements Generator.
func (g *NeighborTypoGenerator) Class() model.Class {
	return model.ClassNeighborTypo
}

// Generate implements Generator.
func (g *NeighborTypoGenerator) Generate(label *model.Label) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		runes := label.Runes()
		for i, orig := range runes {
			for _, neighbor := range g.table.Neighbors(orig) {
				variant := make([]rune, len(runes))
				copy(variant, runes)
				variant[i] = neighbor
				if !yield(model.Candidate{
					Variant:     string(variant),
					Class:       model.ClassNeighborTypo,
					Position:    i,
					Original:    string(orig),
					Replacement: string(neighbor),
					Weight:      model.ClassNeighborTypo.Weight(),
				}) {
					return
				}
			}
		}
	}
}
