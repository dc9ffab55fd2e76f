// SPDX-License-Identifier: MIT
// Package seq: sentinel error set. All messages carry the "seq: " prefix and
// wrap a phiverify taxonomy class so callers can match either level with
// errors.Is.

package seq

import (
	"fmt"

	"github.com/jtrag/phiverify"
)

var (
	// ErrBadKind marks a Kind outside the supported enumeration, or an
	// operation that has no meaning for the given kind (e.g. residue-period
	// detection over GoldenPower).
	ErrBadKind = fmt.Errorf("seq: unsupported sequence kind: %w", phiverify.ErrConfiguration)

	// ErrBadRange marks an index range with from < 0 or to < from.
	ErrBadRange = fmt.Errorf("seq: invalid index range: %w", phiverify.ErrConfiguration)

	// ErrRangeExceeded marks a request larger than Options.MaxLength; the
	// guard against runaway generation.
	ErrRangeExceeded = fmt.Errorf("seq: range exceeds configured maximum: %w", phiverify.ErrConfiguration)

	// ErrBadModulus marks a modulus < 2 for residue operations.
	ErrBadModulus = fmt.Errorf("seq: modulus must be ≥ 2: %w", phiverify.ErrConfiguration)

	// ErrMissingRegistry marks a golden-power or TTT request without a
	// constant registry to take φ from.
	ErrMissingRegistry = fmt.Errorf("seq: constant registry required: %w", phiverify.ErrConfiguration)

	// ErrPeriodNotFound marks a residue scan that hit Options.MaxLength
	// before the initial state recurred. Retry with a larger budget.
	ErrPeriodNotFound = fmt.Errorf("seq: no period within scan budget: %w", phiverify.ErrPrecisionInsufficient)

	// ErrShortSample marks a TTT cycle request too short for its own period
	// detection to say anything.
	ErrShortSample = fmt.Errorf("seq: sample too short for period detection: %w", phiverify.ErrPrecisionInsufficient)

	// ErrOverflow marks a golden-power exponent whose value exceeds the
	// float64 range.
	ErrOverflow = fmt.Errorf("seq: value overflows float64: %w", phiverify.ErrNumericInstability)
)
