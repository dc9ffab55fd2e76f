package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/tensor"
)

// TestEntropy_Bounds verifies 0 ≤ H ≤ log(d₀·d₁) for both built-in formulas
// across several shapes.
func TestEntropy_Bounds(t *testing.T) {
	reg := registry(t)
	shapes := []tensor.Dims{
		{2, 2, 2, 2, 2},
		{3, 3, 3, 3, 3},
		{2, 3, 4, 2, 3},
		{1, 4, 2, 2, 5},
	}
	for _, name := range []string{tensor.FormulaGoldenPhase, tensor.FormulaHarmonicMix} {
		f, err := tensor.LookupFormula(name)
		require.NoError(t, err)
		for _, dims := range shapes {
			tns, err := tensor.Build(dims, f, reg)
			require.NoError(t, err, "%s %v", name, dims)

			h, err := tensor.Entropy(tns, nil)
			require.NoError(t, err, "%s %v", name, dims)
			bound, err := tensor.EntropyBound(tns)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, h, 0.0, "%s %v", name, dims)
			assert.LessOrEqual(t, h, bound+1e-9, "%s %v: entropy above log(dimension)", name, dims)
		}
	}
}

// TestEntropy_RankOneIsZero verifies a constant tensor (rank-1 contraction,
// pure state) carries no disorder.
func TestEntropy_RankOneIsZero(t *testing.T) {
	reg := registry(t)
	tns, err := tensor.Build(tensor.Dims{2, 2, 2, 2, 2},
		func([5]int, tensor.Consts) float64 { return 3 }, reg)
	require.NoError(t, err)

	h, err := tensor.Entropy(tns, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, h, 1e-9)
}

// TestEntropy_NearZeroTrace verifies the all-zero tensor is refused as
// numerically unstable rather than divided through.
func TestEntropy_NearZeroTrace(t *testing.T) {
	tns, err := tensor.NewDense(tensor.Dims{2, 2, 2, 2, 2})
	require.NoError(t, err)

	_, err = tensor.Entropy(tns, nil)
	assert.ErrorIs(t, err, tensor.ErrNearZeroTrace)
	assert.ErrorIs(t, err, phiverify.ErrNumericInstability)
}

// TestEntropy_MaximallyMixed pins the upper bound: an unfolding equal to a
// scaled identity has a flat spectrum, so H must reach log(rows) within the
// ε distortion of the log guard.
func TestEntropy_MaximallyMixed(t *testing.T) {
	// dims (2,2,2,2,1): unfolding is 4×4; the formula writes an identity.
	identity := func(idx [5]int, _ tensor.Consts) float64 {
		row := idx[0]*2 + idx[1]
		col := idx[2]*2 + idx[3]
		if row == col {
			return 1
		}
		return 0
	}
	reg := registry(t)
	tns, err := tensor.Build(tensor.Dims{2, 2, 2, 2, 1}, identity, reg)
	require.NoError(t, err)

	h, err := tensor.Entropy(tns, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), h, 1e-6)
}

// TestEntropy_Deterministic verifies identical builds yield bit-identical
// entropy.
func TestEntropy_Deterministic(t *testing.T) {
	reg := registry(t)
	f, err := tensor.LookupFormula(tensor.FormulaGoldenPhase)
	require.NoError(t, err)

	a, err := tensor.Build(tensor.Dims{3, 2, 3, 2, 3}, f, reg)
	require.NoError(t, err)
	b, err := tensor.Build(tensor.Dims{3, 2, 3, 2, 3}, f, reg)
	require.NoError(t, err)

	ha, err := tensor.Entropy(a, nil)
	require.NoError(t, err)
	hb, err := tensor.Entropy(b, nil)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}
