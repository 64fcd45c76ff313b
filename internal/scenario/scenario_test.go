package scenario

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/lashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
name: Trailer
cargo: {length: 3, width: 23, height: 2.7, mass: 160}
environment: {slope: 3, wind_scale: 0, friction: 0.2}
lashings:
  - {alpha: 20, beta: 30, breaking_strength: 5, side: F, lean: L}
  - {alpha: 20, beta: 30, breaking_strength: 5, side: A, lean: R, friction: 0.1}
`

const scenarioJSON = `{
  "name": "Trailer",
  "cargo": {"length": 3, "width": 23, "height": 2.7, "mass": 160},
  "environment": {"slope": 3, "wind_scale": 0, "friction": 0.2},
  "lashings": [
    {"alpha": 20, "beta": 30, "breaking_strength": 5, "side": "F", "lean": "L"},
    {"alpha": 20, "beta": 30, "breaking_strength": 5, "side": "A", "lean": "R", "friction": 0.1}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func stableScenario(name string) Scenario {
	return Scenario{
		Name:        name,
		Cargo:       Cargo{Length: 3, Width: 23, Height: 2.7, Mass: 160},
		Environment: Environment{Slope: 0, WindScale: 0, Friction: 0.5},
		Lashings: []Lashing{
			{Alpha: 0, Beta: 0, Strength: 1000, Side: "F"},
			{Alpha: 0, Beta: 90, Strength: 1000, Side: "L"},
		},
	}
}

func TestLoadFromFile_YAMLAndJSONAgree(t *testing.T) {
	y, err := LoadFromFile(writeFile(t, "s.yaml", scenarioYAML))
	require.NoError(t, err)
	j, err := LoadFromFile(writeFile(t, "s.json", scenarioJSON))
	require.NoError(t, err)

	assert.Equal(t, j, y)
	assert.Equal(t, "Trailer", y.Name)
	require.Len(t, y.Lashings, 2)
	require.NotNil(t, y.Lashings[1].Friction)
	assert.Equal(t, 0.1, *y.Lashings[1].Friction)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(writeFile(t, "s.txt", scenarioYAML))
	assert.ErrorContains(t, err, "unsupported file type")

	_, err = LoadFromFile(writeFile(t, "s.json", "{not json"))
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadBatchFromFile(writeFile(t, "b.yaml", "scenarios: []"))
	assert.ErrorContains(t, err, "no scenarios")
}

func TestBuild_FrictionFallbackAndReference(t *testing.T) {
	s, err := LoadFromFile(writeFile(t, "s.yaml", scenarioYAML))
	require.NoError(t, err)

	ref := 1
	s.Reference = &ref
	_, set, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, 0.2, set.Lashings[0].Friction())
	assert.Equal(t, 0.1, set.Lashings[1].Friction())
	assert.Same(t, set.Lashings[1], set.Ref())

	bad := 5
	s.Reference = &bad
	_, _, err = s.Build()
	assert.ErrorContains(t, err, "out of range")
}

func TestEvaluate(t *testing.T) {
	s := stableScenario("stable")

	out, err := Evaluate(&s, Options{})
	require.NoError(t, err)
	assert.True(t, out.Lateral.Stable)
	assert.True(t, out.Longitudinal.Stable)
	assert.Nil(t, out.Tipping)
	assert.Equal(t, 0, out.Wind.Scale)
}

func TestEvaluate_Tipping(t *testing.T) {
	s, err := LoadFromFile(writeFile(t, "s.yaml", scenarioYAML))
	require.NoError(t, err)

	out, err := Evaluate(s, Options{Tipping: true})
	require.NoError(t, err)
	require.Len(t, out.Tipping, 2)
	assert.Equal(t, lashing.SideFront, out.Tipping[0].Side)
	assert.InDelta(t, 4.07, out.Tipping[0].Vector.X, 0.01)
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
		want   error
	}{
		{"no lashings", func(s *Scenario) { s.Lashings = nil }, calcerr.ErrEmptyLashingSet},
		{"bad wind", func(s *Scenario) { s.Environment.WindScale = 13 }, calcerr.ErrInvalidWindScale},
		{"bad mass", func(s *Scenario) { s.Cargo.Mass = 0 }, calcerr.ErrInvalidGeometry},
		{"bad strength", func(s *Scenario) { s.Lashings[0].Strength = 0 }, calcerr.ErrInvalidLashingGeometry},
		{"NaN mass", func(s *Scenario) { s.Cargo.Mass = math.NaN() }, calcerr.ErrInvalidGeometry},
		{"NaN strength", func(s *Scenario) { s.Lashings[1].Strength = math.NaN() }, calcerr.ErrInvalidLashingGeometry},
		{"NaN slope", func(s *Scenario) { s.Environment.Slope = math.NaN() }, calcerr.ErrInvalidGeometry},
		{"infinite slope", func(s *Scenario) { s.Environment.Slope = math.Inf(1) }, calcerr.ErrInvalidGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stableScenario(tt.name)
			tt.mutate(&s)
			out, err := Evaluate(&s, Options{})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluateBatch(t *testing.T) {
	broken := stableScenario("broken")
	broken.Environment.WindScale = 20

	b := &Batch{Scenarios: []Scenario{
		stableScenario("a"),
		broken,
		stableScenario(""),
		stableScenario("d"),
	}}

	items, err := EvaluateBatch(context.Background(), b, Options{}, 2)
	require.NoError(t, err)
	require.Len(t, items, 4)

	for i, it := range items {
		assert.Equal(t, i, it.Index)
	}
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "scenario 3", items[2].Name)

	assert.ErrorIs(t, items[1].Err, calcerr.ErrInvalidWindScale)
	assert.Nil(t, items[1].Outcome)
	for _, i := range []int{0, 2, 3} {
		require.NoError(t, items[i].Err)
		assert.True(t, items[i].Outcome.Lateral.Stable)
	}
}

func TestEvaluateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Batch{Scenarios: []Scenario{stableScenario("a")}}
	_, err := EvaluateBatch(ctx, b, Options{}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluate_NaNFromYAML(t *testing.T) {
	path := writeFile(t, "nan.yaml", `
cargo: {length: 3, width: 23, height: 2.7, mass: .nan}
environment: {slope: 3, friction: 0.2}
lashings:
  - {alpha: 0, beta: 0, breaking_strength: .nan, side: F}
`)
	s, err := LoadFromFile(path)
	require.NoError(t, err)
	require.True(t, math.IsNaN(s.Cargo.Mass))

	out, err := Evaluate(s, Options{})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, calcerr.ErrInvalidGeometry)
}
