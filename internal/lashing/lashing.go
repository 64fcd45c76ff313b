package lashing

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/en12195"
	"gonum.org/v1/gonum/spatial/r3"
)

// Side is the side of the cargo unit a lashing is attached to
type Side string

const (
	SideFront Side = "F"
	SideRight Side = "R" // also entered as "Rear"
	SideLeft  Side = "L"
	SideAft   Side = "A"
)

// ParseSide accepts a single-letter code or a full name, case-insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "F", "FRONT":
		return SideFront, nil
	case "R", "RIGHT", "REAR":
		return SideRight, nil
	case "L", "LEFT":
		return SideLeft, nil
	case "A", "AFT":
		return SideAft, nil
	}
	return "", calcerr.New(calcerr.InvalidLashingGeometry, "unknown side %q", s)
}

func (s Side) String() string {
	switch s {
	case SideFront:
		return "Front"
	case SideRight:
		return "Right"
	case SideLeft:
		return "Left"
	case SideAft:
		return "Aft"
	}
	return string(s)
}

// Lean is the direction a lashing inclines toward, used for tipping only
type Lean string

const (
	LeanNone  Lean = ""
	LeanRight Lean = "R"
	LeanLeft  Lean = "L"
)

// ParseLean accepts "", "R", "L", "Right" or "Left".
func ParseLean(s string) (Lean, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return LeanNone, nil
	case "R", "RIGHT":
		return LeanRight, nil
	case "L", "LEFT":
		return LeanLeft, nil
	}
	return "", calcerr.New(calcerr.InvalidLashingGeometry, "unknown lean direction %q", s)
}

func (l Lean) String() string {
	switch l {
	case LeanRight:
		return "Right"
	case LeanLeft:
		return "Left"
	case LeanNone:
		return "-"
	}
	return string(l)
}

// Spec describes a lashing as entered by the user
type Spec struct {
	Alpha    float64 // angle between cable and deck (degrees)
	Beta     float64 // angle between horizontal projection and load axis (degrees)
	Strength float64 // breaking strength
	Friction float64 // friction coefficient
	Side     Side
	Lean     Lean

	// Optional attachment points (m)
	Ground *r3.Vec
	Load   *r3.Vec
}

// Restraint is a lashing with its restraining force components.
// Fx and Fy are calculated once by New and never change.
type Restraint struct {
	spec Spec

	fxCoef float64
	fyCoef float64
	fx     float64
	fy     float64
}

// New validates a lashing spec and calculates its restraint forces.
func New(spec Spec) (*Restraint, error) {
	if !(spec.Strength > 0) || math.IsInf(spec.Strength, 1) {
		return nil, calcerr.New(calcerr.InvalidLashingGeometry,
			"breaking strength must be positive: %.3f", spec.Strength)
	}
	if !(spec.Friction >= 0) || math.IsInf(spec.Friction, 1) {
		return nil, calcerr.New(calcerr.InvalidLashingGeometry,
			"friction coefficient must be a non-negative number: %.3f", spec.Friction)
	}
	if !finite(spec.Alpha) || !finite(spec.Beta) {
		return nil, calcerr.New(calcerr.InvalidLashingGeometry,
			"angles must be finite: alpha=%v, beta=%v", spec.Alpha, spec.Beta)
	}
	side, err := ParseSide(string(spec.Side))
	if err != nil {
		return nil, err
	}
	lean, err := ParseLean(string(spec.Lean))
	if err != nil {
		return nil, err
	}
	spec.Side, spec.Lean = side, lean

	a := en12195.DegToRad(spec.Alpha)
	b := en12195.DegToRad(spec.Beta)
	s := spec.Strength

	r := &Restraint{spec: spec}
	r.fxCoef = s * (math.Cos(a)*math.Cos(b) + spec.Friction*math.Sin(a))
	r.fyCoef = s * (math.Cos(a)*math.Sin(b) + spec.Friction*math.Sin(a))

	// Effective restraint scales with S² (coefficient already carries one S)
	r.fx = r.fxCoef * s
	r.fy = r.fyCoef * s

	return r, nil
}

func (r *Restraint) Spec() Spec          { return r.spec }
func (r *Restraint) Alpha() float64      { return r.spec.Alpha }
func (r *Restraint) Beta() float64       { return r.spec.Beta }
func (r *Restraint) Strength() float64   { return r.spec.Strength }
func (r *Restraint) Friction() float64   { return r.spec.Friction }
func (r *Restraint) Side() Side          { return r.spec.Side }
func (r *Restraint) Lean() Lean          { return r.spec.Lean }
func (r *Restraint) FxCoef() float64     { return r.fxCoef }
func (r *Restraint) FyCoef() float64     { return r.fyCoef }
func (r *Restraint) Fx() float64         { return r.fx }
func (r *Restraint) Fy() float64         { return r.fy }

func (r *Restraint) Ground() (r3.Vec, bool) { return optional(r.spec.Ground) }
func (r *Restraint) Load() (r3.Vec, bool)   { return optional(r.spec.Load) }

func (r *Restraint) String() string {
	return fmt.Sprintf("%s α=%.1f° β=%.1f° S=%.2f μ=%.2f", r.spec.Side, r.spec.Alpha, r.spec.Beta, r.spec.Strength, r.spec.Friction)
}

func optional(v *r3.Vec) (r3.Vec, bool) {
	if v == nil {
		return r3.Vec{}, false
	}
	return *v, true
}

// Set is an ordered group of lashings plus the reference lashing type used
// when additional lashings have to be added.
type Set struct {
	Lashings  []*Restraint
	Reference *Restraint // nil means the first lashing
}

// NewSet builds a set with the first lashing as reference.
func NewSet(lashings ...*Restraint) Set {
	return Set{Lashings: lashings}
}

// Ref returns the reference lashing, or nil for an empty set.
func (s Set) Ref() *Restraint {
	if s.Reference != nil {
		return s.Reference
	}
	if len(s.Lashings) == 0 {
		return nil
	}
	return s.Lashings[0]
}

// SumFx returns Σ|Fx| over the set
func (s Set) SumFx() float64 {
	var total float64
	for _, l := range s.Lashings {
		total += math.Abs(l.fx)
	}
	return total
}

// SumFy returns Σ|Fy| over the set
func (s Set) SumFy() float64 {
	var total float64
	for _, l := range s.Lashings {
		total += math.Abs(l.fy)
	}
	return total
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
