package generator

import (
	"iter"

	"github.com/kucheran101/ensguard/internal/confusable"
	"github.com/kucheran101/ensguard/internal/model"
)

// Generator produces the candidates of one perturbation class.
//
// Implementations must be pure: Generate must not retain state between
// calls, must yield a finite sequence, and must yield identical output
// for identical input. Labels too short for a class (omission and
// adjacent-swap need at least two characters) yield nothing rather than
// erroring.
type Generator interface {
	// Class returns the perturbation class this generator emits.
	Class() model.Class

	// Generate returns the candidate sequence for the label.
	// The sequence is restartable: ranging over it again replays it.
	Generate(label *model.Label) iter.Seq[model.Candidate]
}

// ForClass returns the generator for a single perturbation class.
// Table-independent classes ignore the table argument.
func ForClass(c model.Class, table *confusable.Table) Generator {
	switch c {
	case model.ClassSubstitution:
		return &SubstitutionGenerator{table: table}
	case model.ClassNeighborTypo:
		return &NeighborTypoGenerator{table: table}
	case model.ClassDuplication:
		return DuplicationGenerator{}
	case model.ClassOmission:
		return OmissionGenerator{}
	case model.ClassAdjacentSwap:
		return AdjacentSwapGenerator{}
	default:
		return nil
	}
}

// All returns one generator per class, in canonical priority order.
func All(table *confusable.Table) []Generator {
	generators := make([]Generator, 0, len(model.Classes()))
	for _, c := range model.Classes() {
		generators = append(generators, ForClass(c, table))
	}
	return generators
}
