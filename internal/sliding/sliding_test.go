package sliding

import (
	"math"
	"testing"

	"github.com/alexiusacademia/golash/internal/calcerr"
	"github.com/alexiusacademia/golash/internal/cargo"
	"github.com/alexiusacademia/golash/internal/lashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	unit   *cargo.Unit
	forces cargo.ForceSet
}

func newFixture(t *testing.T, slope float64, windScale int) fixture {
	t.Helper()
	u, err := cargo.NewUnit(3, 23, 2.7, 160)
	require.NoError(t, err)
	w, err := cargo.NewWindLoad(u, windScale)
	require.NoError(t, err)
	fs, err := cargo.NewForceSet(u, slope, w)
	require.NoError(t, err)
	return fixture{unit: u, forces: fs}
}

func newLashing(t *testing.T, spec lashing.Spec) *lashing.Restraint {
	t.Helper()
	r, err := lashing.New(spec)
	require.NoError(t, err)
	return r
}

func fourCorners(t *testing.T) lashing.Set {
	var ls []*lashing.Restraint
	for _, side := range []lashing.Side{lashing.SideFront, lashing.SideRight, lashing.SideLeft, lashing.SideAft} {
		ls = append(ls, newLashing(t, lashing.Spec{Alpha: 0, Beta: 0, Strength: 5, Friction: 0.2, Side: side}))
	}
	return lashing.NewSet(ls...)
}

func TestLateral_InsufficientLashings(t *testing.T) {
	fx := newFixture(t, 3, 0)
	set := fourCorners(t)

	res, err := Analyzer{}.Lateral(fx.unit, fx.forces, set)
	require.NoError(t, err)

	assert.Equal(t, Lateral, res.Axis)
	assert.False(t, res.Stable)
	assert.InDelta(t, 784.8, res.TotalForce, 0.1)
	assert.InDelta(t, 413.5, res.RestraintForce, 0.1)
	assert.InDelta(t, 25, res.UnitContribution, 1e-9)
	assert.Equal(t, 15, res.AdditionalLashings)
	assert.Equal(t, []lashing.Side{lashing.SideLeft, lashing.SideRight}, res.RemedySides)

	want := int(math.Ceil((res.TotalForce - res.RestraintForce) / res.UnitContribution))
	assert.Equal(t, want, res.AdditionalLashings)
}

func TestLongitudinal_ZeroFyCannotBeRemedied(t *testing.T) {
	fx := newFixture(t, 3, 0)

	_, err := Analyzer{}.Longitudinal(fx.unit, fx.forces, fourCorners(t))
	assert.ErrorIs(t, err, calcerr.ErrNonTerminatingSearch)
}

func TestLateral_Stable(t *testing.T) {
	fx := newFixture(t, 0, 0)
	set := lashing.NewSet(newLashing(t, lashing.Spec{Alpha: 0, Beta: 0, Strength: 1000, Friction: 0.5, Side: lashing.SideFront}))

	res, err := Analyzer{}.Lateral(fx.unit, fx.forces, set)
	require.NoError(t, err)

	assert.True(t, res.Stable)
	assert.Zero(t, res.AdditionalLashings)
	assert.Nil(t, res.RemedySides)
	assert.Greater(t, res.RestraintForce, res.TotalForce)
	assert.InDelta(t, 0.5*1569.6, res.Friction, 1e-9)
}

func TestStableWithoutUsableReference(t *testing.T) {
	// Friction alone holds the load, so the zero Fy reference is never needed
	u, err := cargo.NewUnit(2, 2, 2, 1000)
	require.NoError(t, err)
	fs, err := cargo.NewForceSet(u, 0, cargo.WindLoad{})
	require.NoError(t, err)
	set := lashing.NewSet(newLashing(t, lashing.Spec{Strength: 1, Friction: 0.9, Side: lashing.SideFront}))

	res, err := Analyzer{}.Longitudinal(u, fs, set)
	require.NoError(t, err)
	assert.True(t, res.Stable)
}

func TestLongitudinal_Remedy(t *testing.T) {
	fx := newFixture(t, 3, 4)
	set := lashing.NewSet(
		newLashing(t, lashing.Spec{Alpha: 20, Beta: 30, Strength: 5, Friction: 0.1, Side: lashing.SideFront}),
		newLashing(t, lashing.Spec{Alpha: 20, Beta: 30, Strength: 5, Friction: 0.1, Side: lashing.SideFront}),
	)

	res, err := Analyzer{}.Longitudinal(fx.unit, fx.forces, set)
	require.NoError(t, err)

	assert.Equal(t, Longitudinal, res.Axis)
	assert.False(t, res.Stable)
	assert.Equal(t, fx.forces.LongitudinalTotal, res.TotalForce)
	assert.Equal(t, []lashing.Side{lashing.SideFront, lashing.SideAft}, res.RemedySides)

	want := int(math.Ceil((res.TotalForce - res.RestraintForce) / set.Ref().Fy()))
	assert.Equal(t, want, res.AdditionalLashings)
	assert.Greater(t, res.RestraintForce+float64(res.AdditionalLashings)*res.UnitContribution, res.TotalForce)
	assert.LessOrEqual(t, res.RestraintForce+float64(res.AdditionalLashings-1)*res.UnitContribution, res.TotalForce)
}

func TestRemedyCountMatchesClosedForm(t *testing.T) {
	for _, strength := range []float64{1, 2.5, 4, 7, 9.3} {
		for _, slope := range []float64{-6, 0, 4} {
			fx := newFixture(t, slope, 5)
			set := lashing.NewSet(newLashing(t, lashing.Spec{Alpha: 25, Beta: 35, Strength: strength, Friction: 0.15, Side: lashing.SideLeft}))

			for _, check := range []func(*cargo.Unit, cargo.ForceSet, lashing.Set) (*Result, error){
				Analyzer{}.Lateral, Analyzer{}.Longitudinal,
			} {
				res, err := check(fx.unit, fx.forces, set)
				require.NoError(t, err)
				if res.Stable {
					continue
				}
				// Smallest n with restraint + n·unit strictly above design
				want := int(math.Floor((res.TotalForce-res.RestraintForce)/res.UnitContribution)) + 1
				assert.Equal(t, want, res.AdditionalLashings, "strength=%v slope=%v axis=%s", strength, slope, res.Axis)
			}
		}
	}
}

func TestExplicitReference(t *testing.T) {
	fx := newFixture(t, 3, 0)
	set := fourCorners(t)
	set.Reference = newLashing(t, lashing.Spec{Alpha: 0, Beta: 0, Strength: 10, Friction: 0.2, Side: lashing.SideLeft})

	res, err := Analyzer{}.Lateral(fx.unit, fx.forces, set)
	require.NoError(t, err)

	// 100 per extra lashing instead of 25
	assert.InDelta(t, 100, res.UnitContribution, 1e-9)
	assert.Equal(t, 4, res.AdditionalLashings)
}

func TestEmptyLashingSet(t *testing.T) {
	_, err := Analyzer{}.Lateral(nil, cargo.ForceSet{}, lashing.Set{})
	assert.ErrorIs(t, err, calcerr.ErrEmptyLashingSet)

	_, err = Analyzer{}.Longitudinal(nil, cargo.ForceSet{}, lashing.NewSet())
	assert.ErrorIs(t, err, calcerr.ErrEmptyLashingSet)
}

func TestRemedyUnreachable(t *testing.T) {
	fx := newFixture(t, 3, 0)

	_, err := Analyzer{MaxAdditional: 5}.Lateral(fx.unit, fx.forces, fourCorners(t))
	assert.ErrorIs(t, err, calcerr.ErrRemedyUnreachable)

	res, err := Analyzer{MaxAdditional: 15}.Lateral(fx.unit, fx.forces, fourCorners(t))
	require.NoError(t, err)
	assert.Equal(t, 15, res.AdditionalLashings)
}

func TestBoth(t *testing.T) {
	fx := newFixture(t, 0, 2)
	set := lashing.NewSet(newLashing(t, lashing.Spec{Alpha: 10, Beta: 45, Strength: 20, Friction: 0.3, Side: lashing.SideFront}))

	lat, lon, err := Analyzer{}.Both(fx.unit, fx.forces, set)
	require.NoError(t, err)
	assert.Equal(t, Lateral, lat.Axis)
	assert.Equal(t, Longitudinal, lon.Axis)

	_, _, err = Analyzer{}.Both(fx.unit, fx.forces, lashing.Set{})
	assert.ErrorIs(t, err, calcerr.ErrEmptyLashingSet)
}

func TestStrengthNeverReducesRestraint(t *testing.T) {
	fx := newFixture(t, 2, 3)
	prev := 0.0
	for s := 1.0; s <= 20; s += 1.5 {
		set := lashing.NewSet(newLashing(t, lashing.Spec{Alpha: 30, Beta: 20, Strength: s, Friction: 0.25, Side: lashing.SideLeft}))
		res, err := Analyzer{MaxAdditional: 1 << 20}.Lateral(fx.unit, fx.forces, set)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.RestraintForce, prev)
		prev = res.RestraintForce
	}
}

func TestRemedy_ExactMultipleNeedsOneMore(t *testing.T) {
	// 100 + 4·100 equals the design force exactly, which is not enough
	n, err := Analyzer{}.remedy(500, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = Analyzer{}.remedy(500, 100, 99)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCheck_NonFiniteForces(t *testing.T) {
	base := newFixture(t, 3, 0)

	tests := []struct {
		name   string
		mutate func(*cargo.ForceSet)
	}{
		{"NaN slope", func(fs *cargo.ForceSet) { fs.Slope = math.NaN() }},
		{"infinite slope", func(fs *cargo.ForceSet) { fs.Slope = math.Inf(-1) }},
		{"NaN lateral total", func(fs *cargo.ForceSet) { fs.LateralTotal = math.NaN() }},
		{"NaN longitudinal total", func(fs *cargo.ForceSet) { fs.LongitudinalTotal = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := base.forces
			tt.mutate(&fs)

			lat, lon, err := Analyzer{}.Both(base.unit, fs, fourCorners(t))
			assert.ErrorIs(t, err, calcerr.ErrInvalidGeometry)
			assert.Nil(t, lat)
			assert.Nil(t, lon)
		})
	}
}
