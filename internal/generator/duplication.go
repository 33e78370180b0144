package generator

import (
	"iter"

	"github.com/kucheran101/ensguard/internal/model"
)

// DuplicationGenerator emits in-place character duplications: label[i]
// repeated immediately after itself, for every index.
type DuplicationGenerator struct{}

// Class implements Generator.
func (DuplicationGenerator) Class() model.Class {
	return model.ClassDuplication
}

// Generate implements Generator.
func (DuplicationGenerator) Generate(label *model.Label) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		runes := label.Runes()
		for i, orig := range runes {
			variant := make([]rune, 0, len(runes)+1)
			variant = append(variant, runes[:i+1]...)
			variant = append(variant, runes[i:]...)
			if !yield(model.Candidate{
				Variant:     string(variant),
				Class:       model.ClassDuplication,
				Position:    i,
				Original:    string(orig),
				Replacement: string(orig),
				Weight:      model.ClassDuplication.Weight(),
			}) {
				return
			}
		}
	}
}
