package cargo

import (
	"math"

	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/en12195"
)

// ForceSet holds the directional design forces for one cargo/environment combination.
// It is a plain value; every call to NewForceSet returns an independent result.
type ForceSet struct {
	Slope float64 // Road slope (degrees), positive when travelling downhill
	Wind  WindLoad

	// Directional inertial design forces
	Forward float64 // braking
	Aft     float64 // acceleration
	Left    float64 // cornering
	Right   float64 // cornering

	// Worst-case totals
	LongitudinalTotal float64 // max(Forward, Aft)
	LateralTotal      float64 // max(Left, Right)
}

// NewForceSet calculates the design forces for a cargo unit on a slope under wind.
func NewForceSet(u *Unit, slope float64, wind WindLoad) (ForceSet, error) {
	if u == nil || !positive(u.Mass()) {
		return ForceSet{}, calcerr.New(calcerr.InvalidGeometry, "cargo mass must be positive")
	}
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return ForceSet{}, calcerr.New(calcerr.InvalidGeometry, "slope must be a finite angle: %v", slope)
	}

	m := u.Mass()
	g := en12195.G

	// Gravity component along the deck
	slopeTerm := m * g * math.Sin(en12195.DegToRad(slope))

	fs := ForceSet{Slope: slope, Wind: wind}

	// Braking demand increases downhill, acceleration demand uphill
	fs.Forward = m*en12195.BrakingCoeff*g + wind.Longitudinal
	if slope > 0 {
		fs.Forward += slopeTerm
	}

	fs.Aft = m*en12195.AccelerationCoeff*g + wind.Longitudinal
	if slope < 0 {
		fs.Aft -= slopeTerm
	}

	// Same formula for both sides
	fs.Left = m*en12195.CorneringCoeff*g + wind.Lateral
	fs.Right = m*en12195.CorneringCoeff*g + wind.Lateral

	fs.LongitudinalTotal = math.Max(fs.Forward, fs.Aft)
	fs.LateralTotal = math.Max(fs.Left, fs.Right)

	return fs, nil
}
