// SPDX-License-Identifier: MIT
// Package wave: the evaluator and null scan.

package wave

import (
	"fmt"
	"math"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/constant"
	"github.com/jtrag/phiverify/tensor"
)

var (
	// ErrMissingRegistry marks construction without a constant registry.
	ErrMissingRegistry = fmt.Errorf("wave: constant registry required: %w", phiverify.ErrConfiguration)

	// ErrBadDomain marks a scan domain with from ≥ to.
	ErrBadDomain = fmt.Errorf("wave: invalid domain range: %w", phiverify.ErrConfiguration)

	// ErrBadStep marks a non-positive sampling step.
	ErrBadStep = fmt.Errorf("wave: step must be > 0: %w", phiverify.ErrConfiguration)

	// ErrBadTolerance marks a non-positive null tolerance.
	ErrBadTolerance = fmt.Errorf("wave: tolerance must be > 0: %w", phiverify.ErrConfiguration)

	// ErrTooManySamples marks a scan wider than Options.MaxSamples.
	// Retry with a coarser step or a larger budget.
	ErrTooManySamples = fmt.Errorf("wave: sample budget exhausted: %w", phiverify.ErrPrecisionInsufficient)
)

// Defaults (single source of truth).
const (
	// DefaultThetaDegrees is the configured angle θ, the catalogued Giza
	// slope. Options carry θ in radians; this is its degree form.
	DefaultThetaDegrees = 51.85

	// DefaultStep is the sampling step for null scans.
	DefaultStep = 1e-3

	// DefaultTolerance is the |ψ(x)| threshold below which a sample counts
	// as a null.
	DefaultTolerance = 1e-10

	// DefaultMaxSamples bounds one scan.
	DefaultMaxSamples = 10_000_000
)

// Options configures an Evaluator.
//
// Fields:
//   - Theta      — the angle θ in radians.
//   - Step       — null-scan lattice spacing; detection accuracy is ±Step/2.
//   - Tolerance  — |ψ(x)| threshold for a null.
//   - MaxSamples — hard cap on samples per scan.
type Options struct {
	Theta      float64
	Step       float64
	Tolerance  float64
	MaxSamples int
}

// DefaultOptions returns the documented defaults, with θ = 51.85° converted
// to radians.
func DefaultOptions() Options {
	return Options{
		Theta:      DefaultThetaDegrees * math.Pi / 180,
		Step:       DefaultStep,
		Tolerance:  DefaultTolerance,
		MaxSamples: DefaultMaxSamples,
	}
}

// Null is one detected near-zero sample: the lattice point and the measured
// |ψ(x)| residual there.
type Null struct {
	X        float64
	Residual float64
}

// Evaluator computes ψ over a frozen constant snapshot. Immutable after New;
// safe for concurrent use.
type Evaluator struct {
	phi, sqrt2, pi float64
	opts           Options
}

// New builds an Evaluator from the run's registry.
//
// Errors: ErrMissingRegistry, ErrBadStep, ErrBadTolerance, plus registry
// lookup failures.
func New(reg *constant.Registry, opts *Options) (*Evaluator, error) {
	if reg == nil {
		return nil, fmt.Errorf("New: %w", ErrMissingRegistry)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Step <= 0 {
		return nil, fmt.Errorf("New(step %g): %w", o.Step, ErrBadStep)
	}
	if o.Tolerance <= 0 {
		return nil, fmt.Errorf("New(tolerance %g): %w", o.Tolerance, ErrBadTolerance)
	}
	if o.MaxSamples <= 0 {
		o.MaxSamples = DefaultMaxSamples
	}

	e := &Evaluator{opts: o}
	for name, dst := range map[string]*float64{
		constant.Phi:   &e.phi,
		constant.Sqrt2: &e.sqrt2,
		constant.Pi:    &e.pi,
	} {
		v, err := reg.Float64(name)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		*dst = v
	}
	return e, nil
}

// Evaluate returns ψ(x) = sin(φ·√2·θ·x)·exp(−x²/φ) + cos(π·x/φ). O(1), pure.
func (e *Evaluator) Evaluate(x float64) float64 {
	return math.Sin(e.phi*e.sqrt2*e.opts.Theta*x)*math.Exp(-x*x/e.phi) +
		math.Cos(e.pi*x/e.phi)
}

// FindNulls scans [from, to] on the step lattice and reports every sample
// with |ψ(x)| < Tolerance. The result is a detection set in scan order; see
// the package comment for the sampling-accuracy bound.
//
// Errors: ErrBadDomain, ErrTooManySamples.
// Complexity: O((to−from)/Step).
func (e *Evaluator) FindNulls(from, to float64) ([]Null, error) {
	if from >= to {
		return nil, fmt.Errorf("FindNulls(%g, %g): %w", from, to, ErrBadDomain)
	}
	samples := int((to-from)/e.opts.Step) + 1
	if samples > e.opts.MaxSamples {
		return nil, fmt.Errorf("FindNulls(%g, %g): %d samples: %w", from, to, samples, ErrTooManySamples)
	}

	var nulls []Null
	for k := 0; k < samples; k++ {
		x := from + float64(k)*e.opts.Step
		if r := math.Abs(e.Evaluate(x)); r < e.opts.Tolerance {
			nulls = append(nulls, Null{X: x, Residual: r})
		}
	}
	return nulls, nil
}

// ZeroSetDimension estimates the box-counting fractal dimension of the
// detected null positions in [from, to], delegating the estimate to
// tensor.FractalDimension. Fewer than two detected nulls surfaces the
// estimator's ErrFewSamples.
func (e *Evaluator) ZeroSetDimension(from, to float64, scales int, topts *tensor.Options) (float64, error) {
	nulls, err := e.FindNulls(from, to)
	if err != nil {
		return 0, fmt.Errorf("ZeroSetDimension: %w", err)
	}
	xs := make([]float64, len(nulls))
	for i, n := range nulls {
		xs[i] = n.X
	}
	d, err := tensor.FractalDimension(xs, scales, topts)
	if err != nil {
		return 0, fmt.Errorf("ZeroSetDimension(%d nulls): %w", len(nulls), err)
	}
	return d, nil
}
