package cargo

import (
	"math"

	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/en12195"
	"gonum.org/v1/gonum/spatial/r3"
)

// Unit represents a rectangular cargo unit on a transport deck.
// The direction of travel is the Y axis.
type Unit struct {
	// Geometry (m)
	length float64 // X - across the deck
	width  float64 // Y - along the direction of travel
	height float64 // Z

	// Mass (kg)
	mass float64
}

// NewUnit creates a cargo unit. All dimensions and the mass must be positive.
func NewUnit(length, width, height, mass float64) (*Unit, error) {
	if !positive(length) || !positive(width) || !positive(height) {
		return nil, calcerr.New(calcerr.InvalidGeometry,
			"dimensions must be positive: length=%.3f, width=%.3f, height=%.3f", length, width, height)
	}
	if !positive(mass) {
		return nil, calcerr.New(calcerr.InvalidGeometry, "mass must be positive: mass=%.3f", mass)
	}
	return &Unit{length: length, width: width, height: height, mass: mass}, nil
}

func (u *Unit) Length() float64 { return u.length }
func (u *Unit) Width() float64  { return u.width }
func (u *Unit) Height() float64 { return u.height }
func (u *Unit) Mass() float64   { return u.mass }

// Weight returns mass·g
func (u *Unit) Weight() float64 {
	return u.mass * en12195.G
}

// XZCrossSection is the face exposed to wind along the direction of travel.
func (u *Unit) XZCrossSection() float64 {
	return u.length * u.height
}

// YZCrossSection is the face exposed to wind from the side.
func (u *Unit) YZCrossSection() float64 {
	return u.width * u.height
}

// Centroid returns the centre of gravity, measured from the deck corner.
func (u *Unit) Centroid() r3.Vec {
	return r3.Vec{X: u.length / 2, Y: u.width / 2, Z: u.height / 2}
}

// positive is false for NaN and infinities
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
