package scenario

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Scenario is one complete lashing calculation input.
//
// Example YAML:
//
//	name: Container on trailer
//	cargo: {length: 3, width: 23, height: 2.7, mass: 160}
//	environment: {slope: 3, wind_scale: 0, friction: 0.2}
//	lashings:
//	  - {alpha: 20, beta: 30, breaking_strength: 5, side: F, lean: L}
type Scenario struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	Cargo       Cargo       `json:"cargo" yaml:"cargo"`
	Environment Environment `json:"environment" yaml:"environment"`
	Lashings    []Lashing   `json:"lashings" yaml:"lashings"`

	// Index into Lashings of the lashing type used for the remedy. Defaults to the first.
	Reference *int `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// Cargo is the cargo geometry (m) and mass (kg)
type Cargo struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Mass   float64 `json:"mass" yaml:"mass"`
}

// Environment holds the road and weather conditions
type Environment struct {
	Slope     float64 `json:"slope" yaml:"slope"`           // degrees, positive downhill
	WindScale int     `json:"wind_scale" yaml:"wind_scale"` // Beaufort 0-12
	Friction  float64 `json:"friction" yaml:"friction"`     // ground friction coefficient
}

// Lashing is one lashing as entered
type Lashing struct {
	Alpha    float64  `json:"alpha" yaml:"alpha"`
	Beta     float64  `json:"beta" yaml:"beta"`
	Strength float64  `json:"breaking_strength" yaml:"breaking_strength"`
	Friction *float64 `json:"friction,omitempty" yaml:"friction,omitempty"` // falls back to the environment friction
	Side     string   `json:"side" yaml:"side"`
	Lean     string   `json:"lean,omitempty" yaml:"lean,omitempty"`

	Ground *Point `json:"ground,omitempty" yaml:"ground,omitempty"`
	Load   *Point `json:"load,omitempty" yaml:"load,omitempty"`
}

// Point is a 3D attachment position (m)
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (p *Point) vec() *r3.Vec {
	if p == nil {
		return nil
	}
	return &r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Batch is a list of scenarios evaluated independently
type Batch struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// Label returns the scenario name, or a positional name.
func (s *Scenario) Label(i int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("scenario %d", i+1)
}
