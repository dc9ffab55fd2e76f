// SPDX-License-Identifier: MIT
// Package tensor: box-counting fractal dimension.
// For a sequence of halving box sizes ε over the point span, count occupied
// boxes N(ε); the dimension is the slope of log N(ε) vs log(1/ε) fitted by
// least squares. A one-dimensional point set therefore estimates near 1, a
// single point near 0.

package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// FractalDimension estimates the box-counting dimension of a 1-D point set
// over the given number of dyadic scales.
//
// Stage 1 (Validate): ≥ 2 points (ErrFewSamples), scales ≥ MinScales
// (ErrFewScales), scales·len(points) within MaxIterations
// (ErrBudgetExhausted), finite inputs (ErrNonFinite).
// Stage 2 (Degenerate): zero span means every box size holds one box; the
// dimension is 0 by definition, no regression needed.
// Stage 3 (Execute): for k = 0..scales−1, ε = span/2ᵏ; bucket each point by
// floor((x−min)/ε) and count distinct buckets.
// Stage 4 (Fit): slope of log N vs log(1/ε) via least squares.
//
// Complexity: O(scales·n). The estimate's accuracy is bounded by the scale
// count and point density; it is an estimator, not an exact dimension.
func FractalDimension(points []float64, scales int, opts *Options) (float64, error) {
	o := normalized(opts)
	if len(points) < 2 {
		return 0, fmt.Errorf("FractalDimension(%d points): %w", len(points), ErrFewSamples)
	}
	if scales < o.MinScales {
		return 0, fmt.Errorf("FractalDimension(%d scales, min %d): %w", scales, o.MinScales, ErrFewScales)
	}
	if scales*len(points) > o.MaxIterations {
		return 0, fmt.Errorf("FractalDimension(%d×%d work): %w", scales, len(points), ErrBudgetExhausted)
	}

	lo, hi := points[0], points[0]
	for _, x := range points {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("FractalDimension: %w", ErrNonFinite)
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	span := hi - lo
	if span == 0 {
		return 0, nil
	}

	logInvEps := make([]float64, 0, scales)
	logCount := make([]float64, 0, scales)
	occupied := make(map[int]struct{}, len(points))
	for k := 0; k < scales; k++ {
		eps := span / float64(int(1)<<k)
		lastBox := (int(1) << k) - 1
		clear(occupied)
		for _, x := range points {
			box := int((x - lo) / eps)
			// The span's right edge falls on a box boundary; fold it into
			// the last box instead of counting a phantom one past it.
			if box > lastBox {
				box = lastBox
			}
			occupied[box] = struct{}{}
		}
		logInvEps = append(logInvEps, math.Log(1/eps))
		logCount = append(logCount, math.Log(float64(len(occupied))))
	}

	_, slope := stat.LinearRegression(logInvEps, logCount, nil, false)
	return slope, nil
}
