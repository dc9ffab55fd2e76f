package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/tensor"
)

// TestNewDense_Guards covers dimension validation and the allocation cap.
func TestNewDense_Guards(t *testing.T) {
	_, err := tensor.NewDense(tensor.Dims{2, 0, 2, 2, 2})
	assert.ErrorIs(t, err, tensor.ErrBadDims)

	_, err = tensor.NewDense(tensor.Dims{2, -1, 2, 2, 2})
	assert.ErrorIs(t, err, tensor.ErrBadDims)

	_, err = tensor.NewDense(tensor.Dims{100, 100, 100, 100, 100})
	assert.ErrorIs(t, err, tensor.ErrTooLarge)
	assert.ErrorIs(t, err, phiverify.ErrConfiguration)
}

// TestDense_AtSet verifies bounds discipline and the finite-value policy.
func TestDense_AtSet(t *testing.T) {
	tns, err := tensor.NewDense(tensor.Dims{2, 3, 2, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 72, tns.Size())

	idx := [5]int{1, 2, 0, 2, 1}
	require.NoError(t, tns.Set(idx, 4.25))
	v, err := tns.At(idx)
	require.NoError(t, err)
	assert.Equal(t, 4.25, v)

	_, err = tns.At([5]int{1, 3, 0, 0, 0})
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
	err = tns.Set([5]int{0, 0, 0, 0, -1}, 1)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)

	nan := 0.0
	err = tns.Set([5]int{0, 0, 0, 0, 0}, nan/nan)
	assert.ErrorIs(t, err, tensor.ErrNonFinite)
}

// TestDense_Clone verifies deep-copy independence.
func TestDense_Clone(t *testing.T) {
	tns, err := tensor.NewDense(tensor.Dims{1, 1, 1, 1, 2})
	require.NoError(t, err)
	require.NoError(t, tns.Set([5]int{0, 0, 0, 0, 1}, 7))

	cp := tns.Clone()
	require.NoError(t, cp.Set([5]int{0, 0, 0, 0, 1}, 9))

	orig, err := tns.At([5]int{0, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 7.0, orig, "clone writes must not leak back")
}
