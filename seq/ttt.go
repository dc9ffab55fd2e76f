// SPDX-License-Identifier: MIT
// Package seq: the TTT digit-reduction cycle.
// TTT(n) = DigitalRoot(round(Fibonacci(n)·φ)) mod 9. The period is detected
// from the generated sample, never taken from the caller: a claimed period
// that disagrees with detection is recorded as a discrepancy and the
// detected value stands.

package seq

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/jtrag/phiverify/constant"
)

// warmupSteps is the prefix excluded from period detection. round(F(n)·φ)
// equals F(n+1) only once the conjugate-root remainder |ψⁿ| drops below ½,
// which holds from n = 2; the first two samples may sit outside the cycle.
const warmupSteps = 2

// TTTCycle is a generated TTT sample with its detected structure.
type TTTCycle struct {
	Values         []int  // TTT(0..len−1), each in [0, 8]
	ClaimedPeriod  int    // caller's claim, 0 when none was made
	DetectedPeriod int    // independently detected repeat length
	Attractors     []int  // sorted distinct residues of one detected cycle
	Discrepancy    string // non-empty when claim and detection disagree
}

// NewTTTCycle generates length TTT values and detects their repeat period.
//
// Stage 1 (Validate): registry present, length within MaxLength and long
// enough to witness at least two repeats of any admissible period.
// Stage 2 (Execute): for each n, round F(n)·φ at registry precision, take
// the digital root, reduce mod 9.
// Stage 3 (Detect): smallest p ≥ 1 with values[i] == values[i+p] for every
// i past the warmup, requiring at least two full repetitions in the sample.
// Stage 4 (Finalize): collect the attractor set and compare with the claim.
//
// Errors: ErrMissingRegistry, ErrRangeExceeded, ErrShortSample,
// ErrPeriodNotFound. Complexity: O(length) big ops + O(length·period) ints.
func NewTTTCycle(length, claimedPeriod int, opts *Options) (*TTTCycle, error) {
	o := normalized(opts)
	if o.Registry == nil {
		return nil, fmt.Errorf("NewTTTCycle(%d): %w", length, ErrMissingRegistry)
	}
	if length > o.MaxLength {
		return nil, fmt.Errorf("NewTTTCycle(%d): %w", length, ErrRangeExceeded)
	}
	if length < warmupSteps+4 {
		return nil, fmt.Errorf("NewTTTCycle(%d): %w", length, ErrShortSample)
	}

	phi, err := o.Registry.Get(constant.Phi)
	if err != nil {
		return nil, fmt.Errorf("NewTTTCycle(%d): %w", length, err)
	}

	fib := recurrence(0, 1, 1, length-1)
	values := make([]int, length)
	half := big.NewFloat(0.5).SetPrec(phi.Value.Prec())
	prod := new(big.Float).SetPrec(phi.Value.Prec())
	rounded := new(big.Int)
	for n := 0; n < length; n++ {
		// round(F(n)·φ): all products are non-negative, so floor(x+½) is
		// plain truncation after adding one half.
		prod.SetInt(fib[n])
		prod.Mul(prod, phi.Value)
		prod.Add(prod, half)
		prod.Int(rounded)
		values[n] = RootInt(rounded) % 9
	}

	period, ok := detectPeriod(values, warmupSteps)
	if !ok {
		return nil, fmt.Errorf("NewTTTCycle(%d): %w", length, ErrPeriodNotFound)
	}

	c := &TTTCycle{
		Values:         values,
		ClaimedPeriod:  claimedPeriod,
		DetectedPeriod: period,
		Attractors:     attractorSet(values[warmupSteps : warmupSteps+period]),
	}
	if claimedPeriod > 0 && claimedPeriod != period {
		c.Discrepancy = fmt.Sprintf("claimed period %d, detected %d", claimedPeriod, period)
	}
	return c, nil
}

// detectPeriod finds the smallest p such that vals repeats with period p
// past the warmup prefix. A candidate is accepted only when the sample holds
// at least two full repetitions, so a bare tail match cannot fake a period.
func detectPeriod(vals []int, warmup int) (int, bool) {
	n := len(vals) - warmup
	for p := 1; 2*p <= n; p++ {
		match := true
		for i := warmup; i+p < len(vals); i++ {
			if vals[i] != vals[i+p] {
				match = false
				break
			}
		}
		if match {
			return p, true
		}
	}
	return 0, false
}

// attractorSet returns the sorted distinct residues of one cycle.
func attractorSet(cycle []int) []int {
	seen := make(map[int]bool, len(cycle))
	out := make([]int, 0, len(cycle))
	for _, v := range cycle {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
