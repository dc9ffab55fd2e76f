// SPDX-License-Identifier: MIT
// Package phiverify: cross-cutting error taxonomy.
// This file defines ONLY the three failure classes every engine package wraps
// its own sentinels into. Leaf packages return fmt.Errorf("pkg: detail: %w",
// phiverify.ErrX); the problem mapper classifies with errors.Is and converts
// each class into an Error verdict at its boundary. Tolerance misses are a
// normal Failed verdict and never appear here.

package phiverify

import "errors"

var (
	// ErrConfiguration marks an unusable input: unknown constant or sequence
	// kind, an out-of-bound index range, a malformed case reference, or a
	// nonsensical precision. Fatal only to the single dependent computation.
	ErrConfiguration = errors.New("phiverify: invalid configuration")

	// ErrNumericInstability marks a computation that cannot proceed at the
	// working precision: near-zero trace before entropy normalization,
	// overflow in a large exponent, division by a near-zero denominator.
	ErrNumericInstability = errors.New("phiverify: numeric instability")

	// ErrPrecisionInsufficient marks a statistical estimator that ran out of
	// samples, windows, or iteration budget before reaching its configured
	// minimum. Callers may retry with a larger budget.
	ErrPrecisionInsufficient = errors.New("phiverify: insufficient precision")
)
