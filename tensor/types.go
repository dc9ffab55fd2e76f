// SPDX-License-Identifier: MIT
// Package tensor: the rank-5 value store and numeric options.
// Dense generalizes a row-major flat-slice matrix to five indices with
// precomputed strides; bounds discipline mirrors a two-index At/Set surface
// (validate, compute flat offset, read/write).

package tensor

import (
	"fmt"
	"math"
)

// Rank is the fixed index count of the harness tensor.
const Rank = 5

// Dims holds the five index dimensions.
type Dims [Rank]int

// Size returns the total cell count, or 0 if any dimension is invalid.
func (d Dims) Size() int {
	n := 1
	for _, v := range d {
		if v < 1 {
			return 0
		}
		n *= v
	}
	return n
}

// Defaults (single source of truth).
const (
	// DefaultMaxCells bounds tensor allocation (cells, not bytes).
	DefaultMaxCells = 1 << 22

	// DefaultEpsilon guards log(0) inside the entropy sum.
	DefaultEpsilon = 1e-12

	// DefaultTraceEpsilon is the near-zero-trace refusal threshold.
	DefaultTraceEpsilon = 1e-12

	// DefaultMinScales is the fewest box-counting scales a regression may
	// run over.
	DefaultMinScales = 4

	// DefaultMinWindows is the fewest R/S window sizes a Hurst fit may run
	// over.
	DefaultMinWindows = 4

	// DefaultMaxIterations is the shared estimator work budget.
	DefaultMaxIterations = 1_000_000
)

// Options carries the numeric policy for every derived statistic.
//
// Fields:
//   - Epsilon       — additive guard inside log terms.
//   - TraceEpsilon  — below it, trace normalization is refused.
//   - MinScales     — minimum box-counting scales (≥ 2 for any slope).
//   - MinWindows    — minimum R/S window sizes.
//   - MaxIterations — estimator work budget; exceeding it is
//     ErrBudgetExhausted, never an indefinite block.
type Options struct {
	Epsilon       float64
	TraceEpsilon  float64
	MinScales     int
	MinWindows    int
	MaxIterations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		TraceEpsilon:  DefaultTraceEpsilon,
		MinScales:     DefaultMinScales,
		MinWindows:    DefaultMinWindows,
		MaxIterations: DefaultMaxIterations,
	}
}

// normalized applies defaults to nil or partially zero Options.
func normalized(opts *Options) Options {
	o := DefaultOptions()
	if opts == nil {
		return o
	}
	if opts.Epsilon > 0 {
		o.Epsilon = opts.Epsilon
	}
	if opts.TraceEpsilon > 0 {
		o.TraceEpsilon = opts.TraceEpsilon
	}
	if opts.MinScales > 0 {
		o.MinScales = opts.MinScales
	}
	if opts.MinWindows > 0 {
		o.MinWindows = opts.MinWindows
	}
	if opts.MaxIterations > 0 {
		o.MaxIterations = opts.MaxIterations
	}
	return o
}

// Dense is a row-major rank-5 tensor of float64 values. data holds
// Size() elements; strides[k] is the flat step of index k.
type Dense struct {
	dims    Dims
	strides [Rank]int
	data    []float64
}

// NewDense allocates a zeroed tensor.
//
// Stage 1 (Validate): every dimension ≥ 1 and Size ≤ DefaultMaxCells.
// Stage 2 (Prepare): precompute row-major strides (last index fastest).
// Complexity: O(size) for the backing allocation.
func NewDense(dims Dims) (*Dense, error) {
	size := dims.Size()
	if size == 0 {
		return nil, fmt.Errorf("NewDense(%v): %w", dims, ErrBadDims)
	}
	if size > DefaultMaxCells {
		return nil, fmt.Errorf("NewDense(%v): %d cells: %w", dims, size, ErrTooLarge)
	}

	t := &Dense{dims: dims, data: make([]float64, size)}
	stride := 1
	for k := Rank - 1; k >= 0; k-- {
		t.strides[k] = stride
		stride *= dims[k]
	}
	return t, nil
}

// Dims returns the index dimensions.
func (t *Dense) Dims() Dims { return t.dims }

// Size returns the total cell count.
func (t *Dense) Size() int { return len(t.data) }

// offset computes the flat index or returns ErrOutOfRange.
func (t *Dense) offset(idx [Rank]int) (int, error) {
	flat := 0
	for k := 0; k < Rank; k++ {
		if idx[k] < 0 || idx[k] >= t.dims[k] {
			return 0, fmt.Errorf("index %v against dims %v: %w", idx, t.dims, ErrOutOfRange)
		}
		flat += idx[k] * t.strides[k]
	}
	return flat, nil
}

// At retrieves the cell value at idx. O(1).
func (t *Dense) At(idx [Rank]int) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("Dense.At: %w", ErrNilTensor)
	}
	flat, err := t.offset(idx)
	if err != nil {
		return 0, fmt.Errorf("Dense.At: %w", err)
	}
	return t.data[flat], nil
}

// Set assigns v at idx. Rejects NaN/Inf under the package numeric policy.
func (t *Dense) Set(idx [Rank]int, v float64) error {
	if t == nil {
		return fmt.Errorf("Dense.Set: %w", ErrNilTensor)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.Set(%v): %w", idx, ErrNonFinite)
	}
	flat, err := t.offset(idx)
	if err != nil {
		return fmt.Errorf("Dense.Set: %w", err)
	}
	t.data[flat] = v
	return nil
}

// Clone returns an independent deep copy. O(size).
func (t *Dense) Clone() *Dense {
	cp := *t
	cp.data = make([]float64, len(t.data))
	copy(cp.data, t.data)
	return &cp
}
