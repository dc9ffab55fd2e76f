// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// Every message is prefixed with "tensor: ..." and wraps one phiverify
// taxonomy class. Algorithms MUST return these sentinels; tests match them
// via errors.Is. No public entry point panics on user input.

package tensor

import (
	"fmt"

	"github.com/jtrag/phiverify"
)

var (
	// ErrBadDims is returned when any index dimension is < 1.
	ErrBadDims = fmt.Errorf("tensor: invalid dimensions: %w", phiverify.ErrConfiguration)

	// ErrTooLarge is returned when the cell count exceeds MaxCells.
	ErrTooLarge = fmt.Errorf("tensor: cell count exceeds configured maximum: %w", phiverify.ErrConfiguration)

	// ErrOutOfRange indicates an index outside valid bounds. Public
	// indexers return this, never panic.
	ErrOutOfRange = fmt.Errorf("tensor: index out of range: %w", phiverify.ErrConfiguration)

	// ErrUnknownFormula is returned by LookupFormula for an unregistered name.
	ErrUnknownFormula = fmt.Errorf("tensor: unknown cell formula: %w", phiverify.ErrConfiguration)

	// ErrNilTensor indicates a nil *Dense receiver or argument.
	ErrNilTensor = fmt.Errorf("tensor: nil tensor: %w", phiverify.ErrConfiguration)

	// ErrNilFormula indicates Build was handed a nil cell formula.
	ErrNilFormula = fmt.Errorf("tensor: nil cell formula: %w", phiverify.ErrConfiguration)

	// ErrNearZeroTrace is returned when the contraction's trace is within
	// epsilon of zero, making trace normalization meaningless.
	ErrNearZeroTrace = fmt.Errorf("tensor: contraction trace near zero: %w", phiverify.ErrNumericInstability)

	// ErrEigenFailed is returned when the symmetric eigendecomposition does
	// not converge.
	ErrEigenFailed = fmt.Errorf("tensor: eigendecomposition failed: %w", phiverify.ErrNumericInstability)

	// ErrNonFinite is returned when a cell formula or input series produces
	// NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("tensor: non-finite value: %w", phiverify.ErrNumericInstability)

	// ErrFewSamples marks an estimator input below its minimum sample count.
	ErrFewSamples = fmt.Errorf("tensor: too few samples: %w", phiverify.ErrPrecisionInsufficient)

	// ErrFewScales marks a box-counting request below Options.MinScales.
	ErrFewScales = fmt.Errorf("tensor: too few box scales: %w", phiverify.ErrPrecisionInsufficient)

	// ErrFewWindows marks a rescaled-range analysis with fewer window sizes
	// than Options.MinWindows.
	ErrFewWindows = fmt.Errorf("tensor: too few R/S windows: %w", phiverify.ErrPrecisionInsufficient)

	// ErrBudgetExhausted marks an estimator whose work would exceed
	// Options.MaxIterations. Retry with a larger budget.
	ErrBudgetExhausted = fmt.Errorf("tensor: iteration budget exhausted: %w", phiverify.ErrPrecisionInsufficient)
)
