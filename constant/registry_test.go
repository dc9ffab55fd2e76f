package constant_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/constant"
)

// TestNew_PrecisionBounds verifies that non-positive and oversized precisions
// are rejected with ErrBadPrecision, classed as configuration errors.
func TestNew_PrecisionBounds(t *testing.T) {
	for _, p := range []int{0, -1, constant.MaxPrecision + 1} {
		_, err := constant.New(p)
		assert.ErrorIs(t, err, constant.ErrBadPrecision, "precision %d must be rejected", p)
		assert.ErrorIs(t, err, phiverify.ErrConfiguration, "precision errors are configuration errors")
	}
}

// TestGet_UnknownName verifies the unknown-name sentinel.
func TestGet_UnknownName(t *testing.T) {
	reg, err := constant.New(constant.DefaultPrecision)
	require.NoError(t, err)

	_, err = reg.Get("theAether")
	assert.ErrorIs(t, err, constant.ErrUnknownName)
	assert.ErrorIs(t, err, phiverify.ErrConfiguration)
}

// TestPhi_DefiningIdentity checks |φ²−φ−1| < 1e-9 for every precision ≥ 10,
// evaluated in big arithmetic at the registry's own width.
func TestPhi_DefiningIdentity(t *testing.T) {
	for _, p := range []int{10, 25, 50, 200} {
		reg, err := constant.New(p)
		require.NoError(t, err, "precision %d", p)

		phi, err := reg.Get(constant.Phi)
		require.NoError(t, err)

		// residual = φ² − φ − 1
		residual := new(big.Float).SetPrec(phi.Value.Prec()).Mul(phi.Value, phi.Value)
		residual.Sub(residual, phi.Value)
		residual.Sub(residual, big.NewFloat(1))
		r, _ := residual.Float64()
		assert.Less(t, math.Abs(r), 1e-9, "precision %d: φ²−φ−1 residual too large", p)
	}
}

// TestSquareRoots verifies √2, √3 and √5 against their squares.
func TestSquareRoots(t *testing.T) {
	reg, err := constant.New(constant.DefaultPrecision)
	require.NoError(t, err)

	for name, want := range map[string]float64{
		constant.Sqrt2: 2,
		constant.Sqrt3: 3,
		constant.Sqrt5: 5,
	} {
		v, err := reg.Float64(name)
		require.NoError(t, err, name)
		assert.InDelta(t, want, v*v, 1e-12, "%s squared", name)
	}
}

// TestPi_MatchesFloat64 verifies the Machin series against math.Pi to one ulp.
func TestPi_MatchesFloat64(t *testing.T) {
	reg, err := constant.New(30)
	require.NoError(t, err)

	pi, err := reg.Float64(constant.Pi)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, pi, 1e-15)
}

// TestGoldenRatioSlopeDegrees pins the computed arctan(√φ) in degrees.
// The catalogued Giza angle 51.85° sits ~0.026° away from the exact Kepler
// value; the registry reports the computed number, and the separate
// gizaSlopeDegrees entry carries the 14/11 design angle.
func TestGoldenRatioSlopeDegrees(t *testing.T) {
	reg, err := constant.New(constant.DefaultPrecision)
	require.NoError(t, err)

	golden, err := reg.Float64(constant.GoldenRatioSlopeDegrees)
	require.NoError(t, err)
	assert.InDelta(t, 51.8273, golden, 1e-3, "arctan(√φ) in degrees")

	giza, err := reg.Float64(constant.GizaSlopeDegrees)
	require.NoError(t, err)
	assert.InDelta(t, 51.8428, giza, 1e-3, "arctan(14/11) in degrees")
	assert.NotEqual(t, golden, giza, "the two slope angles are distinct values")
}

// TestGizaRatios verifies the fixed geometric ratios.
func TestGizaRatios(t *testing.T) {
	reg, err := constant.New(constant.DefaultPrecision)
	require.NoError(t, err)

	hhb, err := reg.Float64(constant.GizaHeightHalfBase)
	require.NoError(t, err)
	assert.InDelta(t, 14.0/11.0, hhb, 1e-12, "height/half-base is 14/11")

	ph, err := reg.Float64(constant.GizaPerimeterHeight)
	require.NoError(t, err)
	assert.InDelta(t, 44.0/7.0, ph, 1e-12, "perimeter/height is 44/7")
	assert.InDelta(t, 2*math.Pi, ph, 0.01, "44/7 approximates 2π to two decimals only")

	cb, err := reg.Float64(constant.GizaCorridorBase)
	require.NoError(t, err)
	assert.InDelta(t, 105.15/230.36, cb, 1e-12, "corridor/base from survey metres")
}

// TestRegistry_Deterministic verifies that two registries at the same
// precision agree exactly on every constant.
func TestRegistry_Deterministic(t *testing.T) {
	a, err := constant.New(40)
	require.NoError(t, err)
	b, err := constant.New(40)
	require.NoError(t, err)

	require.Equal(t, a.Names(), b.Names())
	for _, name := range a.Names() {
		ca, err := a.Get(name)
		require.NoError(t, err)
		cb, err := b.Get(name)
		require.NoError(t, err)
		assert.Zero(t, ca.Value.Cmp(cb.Value), "%s must be bit-identical across runs", name)
	}
}

// TestNames_SortedAndComplete verifies deterministic iteration order and the
// full advertised surface.
func TestNames_SortedAndComplete(t *testing.T) {
	reg, err := constant.New(constant.DefaultPrecision)
	require.NoError(t, err)

	names := reg.Names()
	assert.IsIncreasing(t, names)
	for _, name := range []string{
		constant.Phi, constant.Sqrt2, constant.Sqrt3, constant.Sqrt5, constant.Pi,
		constant.GoldenRatioSlopeDegrees,
		constant.GizaHeightHalfBase, constant.GizaSlopeDegrees,
		constant.GizaPerimeterHeight, constant.GizaCorridorBase,
	} {
		assert.Contains(t, names, name)
	}
}
