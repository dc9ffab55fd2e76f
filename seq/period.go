// SPDX-License-Identifier: MIT
// Package seq: residue-period detection.
// The scan is the Pisano construction generalized to any second-order
// recurrence: iterate the state pair modulo m until the initial pair recurs;
// the step count is the period and the visited residues are the full cycle.

package seq

import "fmt"

// ResiduePeriod detects the period of kind taken modulo modulus.
//
// Stage 1 (Validate): kind must be a second-order recurrence (Fibonacci,
// Lucas, Pell); modulus ≥ 2.
// Stage 2 (Execute): step the pair (a, b) ← (b, p·b + a mod m) from the
// kind's seed pair, recording a at each step, until the seed pair recurs.
// Stage 3 (Finalize): the step count is the period; the recording is one
// full cycle. The scan is capped at opts.MaxLength steps — the state space
// is at most m² so any true period fits a budget of that size.
//
// Errors: ErrBadKind, ErrBadModulus, ErrPeriodNotFound (budget exhausted).
// Complexity: O(period) int operations, period ≤ m².
func ResiduePeriod(kind Kind, modulus int, opts *Options) (*Cycle, error) {
	o := normalized(opts)
	if modulus < 2 {
		return nil, fmt.Errorf("ResiduePeriod(%s, mod %d): %w", kind, modulus, ErrBadModulus)
	}

	var a0, a1, p int
	switch kind {
	case Fibonacci:
		a0, a1, p = 0, 1, 1
	case Lucas:
		a0, a1, p = 2, 1, 1
	case Pell:
		a0, a1, p = 0, 1, 2
	default:
		return nil, fmt.Errorf("ResiduePeriod(%s, mod %d): %w", kind, modulus, ErrBadKind)
	}
	a0, a1 = a0%modulus, a1%modulus

	a, b := a0, a1
	residues := make([]int, 0, 64)
	for step := 0; step < o.MaxLength; step++ {
		residues = append(residues, a)
		a, b = b, (p*b+a)%modulus
		if a == a0 && b == a1 {
			return &Cycle{Kind: kind, Modulus: modulus, Period: step + 1, Residues: residues}, nil
		}
	}
	return nil, fmt.Errorf("ResiduePeriod(%s, mod %d): %w", kind, modulus, ErrPeriodNotFound)
}
