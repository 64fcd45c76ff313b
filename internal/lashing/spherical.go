package lashing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/en12195"
	"gonum.org/v1/gonum/spatial/r3"
)

// SphericalForce is a lashing force expressed in spherical angles and as a
// 3D vector, for use in moment (tipping) calculations.
type SphericalForce struct {
	Side  Side
	Lean  Lean
	Alpha float64 // spherical polar angle (degrees)
	Beta  float64 // spherical azimuth (degrees)

	Vector r3.Vec // Fx, Fy, Fz
}

type orientation struct {
	side Side
	lean Lean
}

// angleRule maps the lashing alpha/beta to spherical angles
type angleRule func(alpha, beta float64) (sAlpha, sBeta float64)

// Every lashing is tilted 90° from the deck normal; only the azimuth depends on orientation.
var orientationTable = map[orientation]angleRule{
	{SideRight, LeanRight}: func(a, b float64) (float64, float64) { return a + 90, 90 - b },
	{SideRight, LeanLeft}:  func(a, b float64) (float64, float64) { return a + 90, 270 + b },
	{SideLeft, LeanRight}:  func(a, b float64) (float64, float64) { return a + 90, 270 - b },
	{SideLeft, LeanLeft}:   func(a, b float64) (float64, float64) { return a + 90, 90 + b },
	{SideFront, LeanRight}: func(a, b float64) (float64, float64) { return a + 90, 180 - b },
	{SideFront, LeanLeft}:  func(a, b float64) (float64, float64) { return a + 90, b },
	{SideAft, LeanRight}:   func(a, b float64) (float64, float64) { return a + 90, 360 - b },
	{SideAft, LeanLeft}:    func(a, b float64) (float64, float64) { return a + 90, 180 + b },
}

// SphericalAngles returns the spherical angles for a lashing geometry.
func SphericalAngles(side Side, lean Lean, alpha, beta float64) (float64, float64, error) {
	rule, ok := orientationTable[orientation{side, lean}]
	if !ok {
		return 0, 0, calcerr.New(calcerr.UnmappedOrientation, "side=%s lean=%s", side, lean)
	}
	sa, sb := rule(alpha, beta)
	return sa, sb, nil
}

// ToSpherical converts a lashing into a 3D force vector using the given lean direction.
//
//	Fx = S·cos(sβ)·sin(sα)
//	Fy = S·sin(sα)·sin(sβ)
//	Fz = S·sin(sα)
//
// Fz carries no cos(sβ) term; the vertical component does not depend on the azimuth.
func ToSpherical(r *Restraint, lean Lean) (SphericalForce, error) {
	if r == nil {
		return SphericalForce{}, calcerr.New(calcerr.InvalidLashingGeometry, "no lashing")
	}

	sa, sb, err := SphericalAngles(r.Side(), lean, r.Alpha(), r.Beta())
	if err != nil {
		return SphericalForce{}, err
	}

	s := r.Strength()
	sinA := math.Sin(en12195.DegToRad(sa))
	radB := en12195.DegToRad(sb)

	return SphericalForce{
		Side:  r.Side(),
		Lean:  lean,
		Alpha: sa,
		Beta:  sb,
		Vector: r3.Vec{
			X: s * math.Cos(radB) * sinA,
			Y: s * sinA * math.Sin(radB),
			Z: s * sinA,
		},
	}, nil
}

// Spherical converts the lashing using its own lean direction.
func (r *Restraint) Spherical() (SphericalForce, error) {
	return ToSpherical(r, r.Lean())
}

// SphericalAll converts every lashing of the set, in order.
func SphericalAll(set Set) ([]SphericalForce, error) {
	out := make([]SphericalForce, 0, len(set.Lashings))
	for i, l := range set.Lashings {
		f, err := l.Spherical()
		if err != nil {
			return nil, fmt.Errorf("lashing %d: %w", i+1, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// Magnitude returns |F|
func (f SphericalForce) Magnitude() float64 {
	return r3.Norm(f.Vector)
}
