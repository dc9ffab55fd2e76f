// SPDX-License-Identifier: MIT
// Package tensor: Hurst exponent by rescaled-range analysis.
// For dyadic window sizes w, split the series into ⌊n/w⌋ segments, compute
// each segment's range of cumulative mean deviations R and its standard
// deviation S, and average R/S. The exponent is the slope of log(R/S) vs
// log(w). White noise estimates near 0.5, persistent series above it.

package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// R/S analysis geometry.
const (
	// hurstMinSeries is the shortest series the estimator accepts: four
	// dyadic window sizes starting at hurstBaseWindow need n ≥ 2·8·2³ to
	// exist at all.
	hurstMinSeries = 32

	// hurstBaseWindow is the smallest R/S window size.
	hurstBaseWindow = 8
)

// Hurst estimates the Hurst exponent of series.
//
// Stage 1 (Validate): length ≥ 32 (ErrFewSamples), finite values
// (ErrNonFinite), work within MaxIterations (ErrBudgetExhausted).
// Stage 2 (Execute): for w = 8, 16, …, n/2 compute the mean R/S over all
// full segments of size w, skipping flat segments (S = 0).
// Stage 3 (Fit): require ≥ MinWindows usable (log w, log R/S) pairs
// (ErrFewWindows), then fit the slope by least squares.
//
// Complexity: O(n·log n). Like every estimator here, the result's accuracy
// is bounded by the sample, not asserted exact.
func Hurst(series []float64, opts *Options) (float64, error) {
	o := normalized(opts)
	n := len(series)
	if n < hurstMinSeries {
		return 0, fmt.Errorf("Hurst(%d samples, min %d): %w", n, hurstMinSeries, ErrFewSamples)
	}
	for _, x := range series {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("Hurst: %w", ErrNonFinite)
		}
	}

	// Window sizes double from the base; each pass touches every sample
	// once, so total work is n per window size.
	windowCount := 0
	for w := hurstBaseWindow; w <= n/2; w *= 2 {
		windowCount++
	}
	if windowCount*n > o.MaxIterations {
		return 0, fmt.Errorf("Hurst(%d×%d work): %w", windowCount, n, ErrBudgetExhausted)
	}

	logW := make([]float64, 0, windowCount)
	logRS := make([]float64, 0, windowCount)
	for w := hurstBaseWindow; w <= n/2; w *= 2 {
		rs, ok := meanRescaledRange(series, w)
		if !ok {
			continue // every segment flat at this size
		}
		logW = append(logW, math.Log(float64(w)))
		logRS = append(logRS, math.Log(rs))
	}
	if len(logW) < o.MinWindows {
		return 0, fmt.Errorf("Hurst(%d usable windows, min %d): %w", len(logW), o.MinWindows, ErrFewWindows)
	}

	_, slope := stat.LinearRegression(logW, logRS, nil, false)
	return slope, nil
}

// meanRescaledRange averages R/S over all full segments of size w.
// Returns ok=false when no segment has positive deviation.
func meanRescaledRange(series []float64, w int) (float64, bool) {
	sum, count := 0.0, 0
	for start := 0; start+w <= len(series); start += w {
		seg := series[start : start+w]

		mean := 0.0
		for _, x := range seg {
			mean += x
		}
		mean /= float64(w)

		// Range of cumulative deviations from the segment mean.
		cum, lo, hi, variance := 0.0, 0.0, 0.0, 0.0
		for _, x := range seg {
			d := x - mean
			cum += d
			lo = math.Min(lo, cum)
			hi = math.Max(hi, cum)
			variance += d * d
		}
		s := math.Sqrt(variance / float64(w))
		if s == 0 {
			continue
		}
		sum += (hi - lo) / s
		count++
	}
	if count == 0 || sum <= 0 {
		return 0, false
	}
	return sum / float64(count), true
}
