package scenario

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/cargo"
	"github.com/alexiusacademia/golash/internal/lashing"
	"github.com/alexiusacademia/golash/internal/sliding"
	"golang.org/x/sync/errgroup"
)

// Options controls how scenarios are evaluated
type Options struct {
	MaxAdditional int  // remedy search bound, 0 for the default
	Tipping       bool // also compute spherical force vectors
}

// Outcome holds every computed result for one scenario
type Outcome struct {
	Scenario *Scenario

	Unit     *cargo.Unit
	Wind     cargo.WindLoad
	Forces   cargo.ForceSet
	Lashings lashing.Set

	Lateral      *sliding.Result
	Longitudinal *sliding.Result

	Tipping []lashing.SphericalForce
}

// Build converts the scenario into validated core types.
func (s *Scenario) Build() (*cargo.Unit, lashing.Set, error) {
	u, err := cargo.NewUnit(s.Cargo.Length, s.Cargo.Width, s.Cargo.Height, s.Cargo.Mass)
	if err != nil {
		return nil, lashing.Set{}, fmt.Errorf("cargo: %w", err)
	}

	set := lashing.Set{Lashings: make([]*lashing.Restraint, 0, len(s.Lashings))}
	for i, l := range s.Lashings {
		friction := s.Environment.Friction
		if l.Friction != nil {
			friction = *l.Friction
		}
		r, err := lashing.New(lashing.Spec{
			Alpha:    l.Alpha,
			Beta:     l.Beta,
			Strength: l.Strength,
			Friction: friction,
			Side:     lashing.Side(l.Side),
			Lean:     lashing.Lean(l.Lean),
			Ground:   l.Ground.vec(),
			Load:     l.Load.vec(),
		})
		if err != nil {
			return nil, lashing.Set{}, fmt.Errorf("lashing %d: %w", i+1, err)
		}
		set.Lashings = append(set.Lashings, r)
	}

	if s.Reference != nil {
		idx := *s.Reference
		if idx < 0 || idx >= len(set.Lashings) {
			return nil, lashing.Set{}, fmt.Errorf("reference lashing %d out of range (have %d)", idx, len(set.Lashings))
		}
		set.Reference = set.Lashings[idx]
	}

	return u, set, nil
}

// Evaluate runs the full calculation for one scenario. Any failure aborts
// the whole calculation; no partial outcome is returned.
func Evaluate(s *Scenario, opts Options) (*Outcome, error) {
	if len(s.Lashings) == 0 {
		return nil, calcerr.New(calcerr.EmptyLashingSet, "scenario has no lashings")
	}

	u, set, err := s.Build()
	if err != nil {
		return nil, err
	}

	wind, err := cargo.NewWindLoad(u, s.Environment.WindScale)
	if err != nil {
		return nil, fmt.Errorf("wind: %w", err)
	}
	forces, err := cargo.NewForceSet(u, s.Environment.Slope, wind)
	if err != nil {
		return nil, fmt.Errorf("forces: %w", err)
	}

	analyzer := sliding.Analyzer{MaxAdditional: opts.MaxAdditional}
	lat, lon, err := analyzer.Both(u, forces, set)
	if err != nil {
		return nil, fmt.Errorf("sliding: %w", err)
	}

	out := &Outcome{
		Scenario:     s,
		Unit:         u,
		Wind:         wind,
		Forces:       forces,
		Lashings:     set,
		Lateral:      lat,
		Longitudinal: lon,
	}

	if opts.Tipping {
		out.Tipping, err = lashing.SphericalAll(set)
		if err != nil {
			return nil, fmt.Errorf("tipping: %w", err)
		}
	}

	slog.Debug("scenario evaluated",
		"name", s.Name,
		"lateralStable", lat.Stable,
		"longitudinalStable", lon.Stable,
		"lashings", len(set.Lashings))

	return out, nil
}

// BatchItem is the outcome of one scenario in a batch
type BatchItem struct {
	Index   int
	Name    string
	Outcome *Outcome
	Err     error
}

// EvaluateBatch evaluates scenarios in parallel with at most workers
// goroutines. Results keep the input order. A failing scenario is recorded
// on its item; only context cancellation stops the batch.
func EvaluateBatch(ctx context.Context, b *Batch, opts Options, workers int) ([]BatchItem, error) {
	if workers <= 0 {
		workers = 1
	}

	items := make([]BatchItem, len(b.Scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range b.Scenarios {
		s := &b.Scenarios[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := Evaluate(s, opts)
			if err != nil {
				slog.Debug("scenario failed", "index", i, "name", s.Name, "error", err)
			}
			items[i] = BatchItem{Index: i, Name: s.Label(i), Outcome: out, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
