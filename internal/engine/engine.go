package engine

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/kucheran101/ensguard/internal/confusable"
	"github.com/kucheran101/ensguard/internal/generator"
	"github.com/kucheran101/ensguard/internal/model"
)

// Engine runs the full generate-aggregate-score-rank pipeline.
// It holds only read-only state and is safe for concurrent use.
type Engine struct {
	// table is the shared confusable/keyboard lookup table.
	table *confusable.Table

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// EngineOption configures an Engine.
// This follows the functional options pattern for clean API design.
type EngineOption func(*Engine)

// WithLogger sets a custom logger for the engine.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine over the given confusable table.
func New(table *confusable.Table, opts ...EngineOption) *Engine {
	e := &Engine{table: table}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// GenerateRanked generates, scores, and ranks the look-alike variants of
// a label. It is the single entry point of the core.
//
// Validation happens before any generation: invalid options or an
// invalid label return an error with no partial results. An empty
// result after score filtering is a valid outcome, not an error.
func (e *Engine) GenerateRanked(ctx context.Context, rawLabel string, opts Options) (*model.RankedReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	label, err := model.NewLabel(rawLabel)
	if err != nil {
		return nil, err
	}

	classes := opts.enabledClasses()
	e.logger.Debug("starting generation",
		"label", label.Normalized(),
		"classes", len(classes),
	)

	perClass, err := e.runGenerators(ctx, label, classes)
	if err != nil {
		return nil, err
	}

	aggregates := aggregateCandidates(label, perClass)

	scored := make([]model.ScoredCandidate, 0, len(aggregates))
	for _, agg := range aggregates {
		candidate := scoreAggregate(e.table, label, agg)
		if candidate.Score < opts.MinScore {
			continue
		}
		scored = append(scored, candidate)
	}

	rankCandidates(scored)

	if opts.MaxResults > 0 && len(scored) > opts.MaxResults {
		scored = scored[:opts.MaxResults]
	}

	e.logger.Debug("generation complete",
		"label", label.Normalized(),
		"candidates", len(scored),
	)

	return model.NewRankedReport(label, scored), nil
}

// runGenerators executes one generator per enabled class, in parallel,
// and returns their outputs indexed by the canonical class order of the
// classes slice. Collecting per class and merging by index is what keeps
// the run deterministic under parallel execution: downstream code never
// sees arrival order.
func (e *Engine) runGenerators(ctx context.Context, label *model.Label, classes []model.Class) ([][]model.Candidate, error) {
	perClass := make([][]model.Candidate, len(classes))

	g, ctx := errgroup.WithContext(ctx)
	for i, class := range classes {
		gen := generator.ForClass(class, e.table)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var out []model.Candidate
			for c := range gen.Generate(label) {
				out = append(out, c)
			}
			perClass[i] = out

			e.logger.Debug("generator finished",
				"class", class.String(),
				"candidates", len(out),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return perClass, nil
}
