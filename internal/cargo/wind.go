package cargo

import (
	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/en12195"
)

// WindLoad holds the wind pressure forces acting on a cargo unit.
// The zero value represents calm air with no wind force.
type WindLoad struct {
	Scale    int     // Beaufort index
	SpeedKmh float64 // Maximum wind speed for the index

	Longitudinal float64 // on the XZ face, along the direction of travel
	Lateral      float64 // on the YZ face, across the direction of travel
}

// NewWindLoad derives wind forces from a Beaufort index and the unit's cross-sections.
func NewWindLoad(u *Unit, scale int) (WindLoad, error) {
	speed, ok := en12195.BeaufortSpeed(scale)
	if !ok {
		return WindLoad{}, calcerr.New(calcerr.InvalidWindScale,
			"wind scale %d outside %d-%d", scale, en12195.MinBeaufort, en12195.MaxBeaufort)
	}
	if u == nil {
		return WindLoad{}, calcerr.New(calcerr.InvalidGeometry, "no cargo unit")
	}

	// F = k · ½ρAv²
	q := en12195.WindUnitFactor * 0.5 * en12195.AirDensity * speed * speed

	return WindLoad{
		Scale:        scale,
		SpeedKmh:     speed,
		Longitudinal: q * u.XZCrossSection(),
		Lateral:      q * u.YZCrossSection(),
	}, nil
}

// BeaufortRow is one row of the Beaufort lookup table
type BeaufortRow struct {
	Scale    int
	SpeedKmh float64
}

// BeaufortTable returns the full scale-to-speed table in index order.
func BeaufortTable() []BeaufortRow {
	rows := make([]BeaufortRow, 0, en12195.MaxBeaufort+1)
	for s := en12195.MinBeaufort; s <= en12195.MaxBeaufort; s++ {
		v, _ := en12195.BeaufortSpeed(s)
		rows = append(rows, BeaufortRow{Scale: s, SpeedKmh: v})
	}
	return rows
}
