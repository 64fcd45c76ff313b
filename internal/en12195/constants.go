package en12195

import "math"

// Road transport design constants (EN 12195-1 style acceleration coefficients)

const (
	// Gravitational acceleration (m/s²)
	G = 9.81

	// Acceleration coefficients for road transport, as fractions of g
	BrakingCoeff      = 0.8 // forward, emergency braking
	AccelerationCoeff = 0.5 // aft, acceleration
	CorneringCoeff    = 0.5 // left / right, cornering

	// Wind pressure
	AirDensity     = 1.225 // kg/m³
	WindUnitFactor = 0.001 // converts 0.5·ρ·A·v² to the force unit used by lashings

	// Beaufort scale limits
	MinBeaufort = 0
	MaxBeaufort = 12

	// Upper bound for the incremental lashing search
	DefaultMaxAdditionalLashings = 10000
)

// beaufortMaxKmh maps a Beaufort index to the maximum expected wind speed (km/h).
// Force 12 has no upper limit; 180 km/h is used as the hurricane ceiling.
var beaufortMaxKmh = [MaxBeaufort + 1]float64{
	1, 5, 11, 19, 28, 38, 49, 61, 74, 88, 102, 117, 180,
}

// BeaufortSpeed returns the maximum wind speed in km/h for a Beaufort index.
// ok is false when the index is outside 0-12.
func BeaufortSpeed(scale int) (kmh float64, ok bool) {
	if scale < MinBeaufort || scale > MaxBeaufort {
		return 0, false
	}
	return beaufortMaxKmh[scale], true
}

// DegToRad converts an angle in degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
