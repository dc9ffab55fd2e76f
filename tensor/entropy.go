// SPDX-License-Identifier: MIT
// Package tensor: spectral entropy of the rank-5 tensor.
// The tensor unfolds to A with rows = d₀·d₁ and cols = d₂·d₃·d₄ (the
// row-major layout makes this a zero-copy view), contracts to M = A·Aᵀ,
// normalizes by trace and sums −λ·log(λ+ε) over the spectrum. M is Gram by
// construction, so ρ is non-negative-definite and the sum is a true
// von-Neumann-style entropy bounded by log(rows).

package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Entropy computes −Tr(ρ·log(ρ+ε)) for ρ = M/Tr(M), M = A·Aᵀ.
//
// Stage 1 (Validate): non-nil tensor.
// Stage 2 (Contract): M via a symmetric outer product of the unfolding.
// Stage 3 (Normalize): refuse |Tr(M)| ≤ TraceEpsilon (ErrNearZeroTrace);
// otherwise ρ = M/Tr(M).
// Stage 4 (Execute): eigendecompose ρ (ErrEigenFailed on non-convergence),
// clamp the tiny negative eigenvalues roundoff produces, and accumulate
// −λ·log(λ+ε).
//
// The result satisfies 0 ≤ H ≤ log(d₀·d₁) within numeric tolerance.
// Complexity: O(rows²·cols) for the contraction + O(rows³) for the spectrum.
func Entropy(t *Dense, opts *Options) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("Entropy: %w", ErrNilTensor)
	}
	o := normalized(opts)

	rows := t.dims[0] * t.dims[1]
	cols := t.dims[2] * t.dims[3] * t.dims[4]
	a := mat.NewDense(rows, cols, t.data) // view only; never written

	m := mat.NewSymDense(rows, nil)
	m.SymOuterK(1, a)

	trace := 0.0
	for i := 0; i < rows; i++ {
		trace += m.At(i, i)
	}
	if math.Abs(trace) <= o.TraceEpsilon {
		return 0, fmt.Errorf("Entropy: trace %.3g within ε of zero: %w", trace, ErrNearZeroTrace)
	}

	rho := mat.NewSymDense(rows, nil)
	rho.ScaleSym(1/trace, m)

	var es mat.EigenSym
	if ok := es.Factorize(rho, false); !ok {
		return 0, fmt.Errorf("Entropy: %w", ErrEigenFailed)
	}

	h := 0.0
	for _, lambda := range es.Values(nil) {
		if lambda <= 0 {
			continue // roundoff below zero carries no weight
		}
		h -= lambda * math.Log(lambda+o.Epsilon)
	}
	if h < 0 {
		h = 0 // ε inside the log can push an almost-pure spectrum fractionally negative
	}
	return h, nil
}

// EntropyBound returns log(d₀·d₁), the ceiling Entropy can reach for t.
func EntropyBound(t *Dense) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("EntropyBound: %w", ErrNilTensor)
	}
	return math.Log(float64(t.dims[0] * t.dims[1])), nil
}
