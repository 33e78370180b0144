package engine

import "github.com/kucheran101/ensguard/internal/model"

// aggregate accumulates everything known about one distinct variant
// string across all generators that produced it.
type aggregate struct {
	// variant is the resulting string; unique within one run.
	variant string

	// classes lists the contributing classes in first-seen order.
	// Because per-class outputs are merged in canonical priority order,
	// first-seen order here equals canonical order.
	classes []model.Class

	// best holds, per contributing class, the highest-weight edit
	// metadata. The scorer picks the most confusable explanation from
	// these rather than an arbitrary first write.
	best map[model.Class]model.Candidate
}

// aggregateCandidates merges per-class generator output into one
// deduplicated aggregate per distinct variant.
//
// perClass must be ordered by canonical class priority; within a class,
// candidates arrive in generator emission order (positions ascending).
// The returned slice preserves first-seen variant order, which makes the
// whole pass deterministic and idempotent. The no-op variant equal to
// the normalized label is dropped here.
func aggregateCandidates(label *model.Label, perClass [][]model.Candidate) []*aggregate {
	byVariant := make(map[string]*aggregate)
	var ordered []*aggregate

	for _, candidates := range perClass {
		for _, c := range candidates {
			if c.Variant == label.Normalized() {
				continue
			}

			agg, ok := byVariant[c.Variant]
			if !ok {
				agg = &aggregate{
					variant: c.Variant,
					best:    make(map[model.Class]model.Candidate),
				}
				byVariant[c.Variant] = agg
				ordered = append(ordered, agg)
			}

			existing, seen := agg.best[c.Class]
			if !seen {
				agg.classes = append(agg.classes, c.Class)
				agg.best[c.Class] = c
				continue
			}
			// Same class produced the same string twice; keep the
			// higher-weight edit, breaking ties toward the earlier
			// position for determinism.
			if c.Weight > existing.Weight ||
				(c.Weight == existing.Weight && c.Position < existing.Position) {
				agg.best[c.Class] = c
			}
		}
	}

	return ordered
}
