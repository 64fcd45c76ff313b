package sliding

import (
	"math"

	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/cargo"
	"github.com/alexiusacademia/golash/internal/en12195"
	"github.com/alexiusacademia/golash/internal/lashing"
)

// Axis identifies the sliding direction being checked
type Axis string

const (
	Lateral      Axis = "lateral"      // transverse, across the direction of travel (X)
	Longitudinal Axis = "longitudinal" // along the direction of travel (Y)
)

// Result holds the outcome of a sliding check on one axis
type Result struct {
	Axis   Axis
	Stable bool

	TotalForce     float64 // design force
	RestraintForce float64 // lashings + friction, before any remedy

	// Remedy (only when not stable)
	AdditionalLashings int
	UnitContribution   float64 // restraint added per extra reference lashing
	RemedySides        []lashing.Side

	Friction float64 // friction part of RestraintForce
	Message  string
}

// Analyzer runs sliding checks
type Analyzer struct {
	// Upper bound on the number of additional lashings the search may report.
	// Zero means en12195.DefaultMaxAdditionalLashings.
	MaxAdditional int
}

// Lateral checks transverse sliding: Σ|Fx| + μ·W·cos(slope) against the lateral design total.
func (a Analyzer) Lateral(u *cargo.Unit, fs cargo.ForceSet, set lashing.Set) (*Result, error) {
	return a.check(Lateral, u, fs, set)
}

// Longitudinal checks sliding along the direction of travel using Fy and the longitudinal total.
func (a Analyzer) Longitudinal(u *cargo.Unit, fs cargo.ForceSet, set lashing.Set) (*Result, error) {
	return a.check(Longitudinal, u, fs, set)
}

// Both runs the lateral and the longitudinal check.
func (a Analyzer) Both(u *cargo.Unit, fs cargo.ForceSet, set lashing.Set) (lat, lon *Result, err error) {
	lat, err = a.Lateral(u, fs, set)
	if err != nil {
		return nil, nil, err
	}
	lon, err = a.Longitudinal(u, fs, set)
	if err != nil {
		return nil, nil, err
	}
	return lat, lon, nil
}

func (a Analyzer) check(axis Axis, u *cargo.Unit, fs cargo.ForceSet, set lashing.Set) (*Result, error) {
	if len(set.Lashings) == 0 {
		return nil, calcerr.New(calcerr.EmptyLashingSet, "%s check needs at least one lashing", axis)
	}
	if u == nil {
		return nil, calcerr.New(calcerr.InvalidGeometry, "no cargo unit")
	}
	if !finite(fs.Slope) {
		return nil, calcerr.New(calcerr.InvalidGeometry, "slope must be a finite angle: %v", fs.Slope)
	}
	ref := set.Ref()

	var design, lashings, unit float64
	var sides []lashing.Side
	switch axis {
	case Lateral:
		design = fs.LateralTotal
		lashings = set.SumFx()
		unit = ref.Fx()
		sides = []lashing.Side{lashing.SideLeft, lashing.SideRight}
	default:
		design = fs.LongitudinalTotal
		lashings = set.SumFy()
		unit = ref.Fy()
		sides = []lashing.Side{lashing.SideFront, lashing.SideAft}
	}

	// One shared ground friction term, taken from the reference lashing
	friction := ref.Friction() * u.Weight() * math.Cos(en12195.DegToRad(fs.Slope))

	result := &Result{
		Axis:           axis,
		TotalForce:     design,
		RestraintForce: lashings + friction,
		Friction:       friction,
	}

	if !finite(design) || !finite(result.RestraintForce) {
		return nil, calcerr.New(calcerr.InvalidGeometry,
			"%s forces are not finite: design=%v restraint=%v", axis, design, result.RestraintForce)
	}

	if design <= result.RestraintForce {
		result.Stable = true
		result.Message = "No " + string(axis) + " sliding occurs"
		return result, nil
	}

	if !(unit > 0) || math.IsInf(unit, 1) {
		return nil, calcerr.New(calcerr.NonTerminatingSearch,
			"reference lashing adds %.4f to %s restraint", unit, axis)
	}

	n, err := a.remedy(design, result.RestraintForce, unit)
	if err != nil {
		return nil, err
	}

	result.AdditionalLashings = n
	result.UnitContribution = unit
	result.RemedySides = sides
	result.Message = "Sliding occurs - add more lashings on " + sides[0].String() + " or " + sides[1].String()
	return result, nil
}

// remedy counts reference lashings to add until restraint exceeds design.
func (a Analyzer) remedy(design, restraint, unit float64) (int, error) {
	limit := a.MaxAdditional
	if limit <= 0 {
		limit = en12195.DefaultMaxAdditionalLashings
	}

	// Reject before looping when the deficit alone exceeds the bound
	if (design-restraint)/unit > float64(limit) {
		return 0, calcerr.New(calcerr.RemedyUnreachable,
			"more than %d additional lashings needed (deficit %.2f, %.4f each)", limit, design-restraint, unit)
	}

	count := 0
	for restraint <= design {
		if count == limit {
			return 0, calcerr.New(calcerr.RemedyUnreachable, "more than %d additional lashings needed", limit)
		}
		restraint += unit
		count++
	}
	return count, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
