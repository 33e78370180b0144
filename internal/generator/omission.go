package generator

import (
	"iter"

	"github.com/kucheran101/ensguard/internal/model"
)

// OmissionGenerator emits single-character omissions.
// Labels of length 1 yield nothing: omitting the only character would
// leave an empty label, which is not a variant of anything.
type OmissionGenerator struct{}

// Class implements Generator.
func (OmissionGenerator) Class() model.Class {
	return model.ClassOmission
}

// Generate implements Generator.
func (OmissionGenerator) Generate(label *model.Label) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		runes := label.Runes()
		if len(runes) < 2 {
			return
		}
		for i, orig := range runes {
			variant := make([]rune, 0, len(runes)-1)
			variant = append(variant, runes[:i]...)
			variant = append(variant, runes[i+1:]...)
			if !yield(model.Candidate{
				Variant:  string(variant),
				Class:    model.ClassOmission,
				Position: i,
				Original: string(orig),
				Weight:   model.ClassOmission.Weight(),
			}) {
				return
			}
		}
	}
}
