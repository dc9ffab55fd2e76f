// SPDX-License-Identifier: MIT
// Package problem: auxiliary bounded iterations.
// These are the per-problem custom computations the general components do
// not cover: the halving/tripling walk and a quadratic recurrence mod m.
// Both are hard-bounded — on budget exhaustion they return
// ErrIterationBudget instead of spinning.

package problem

import "fmt"

// defaultMaxSteps bounds the halving/tripling walk when the config does not
// set params.maxSteps.
const defaultMaxSteps = 10_000

// evalCollatzSteps counts halving/tripling steps from params.start to 1:
// even n halves, odd n maps to 3n+1. Whether the walk reaches 1 at all is
// exactly the open question — the budget makes non-termination a reported
// precision failure rather than a hang.
func evalCollatzSteps(cfg Config, env *Env) (float64, error) {
	start, err := cfg.param("start")
	if err != nil {
		return 0, err
	}
	n := int64(start)
	if n < 1 {
		return 0, fmt.Errorf("formula %q: start %d must be ≥ 1: %w", cfg.Formula, n, ErrBadConfig)
	}
	maxSteps := int(cfg.paramOr("maxSteps", defaultMaxSteps))

	steps := 0
	for n != 1 {
		if steps >= maxSteps {
			return 0, fmt.Errorf("formula %q: no convergence within %d steps: %w", cfg.Formula, maxSteps, ErrIterationBudget)
		}
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		steps++
	}
	return float64(steps), nil
}

// evalRecurrenceMod iterates x ← (x² + offset) mod modulus for params.steps
// steps from params.seed and returns the final residue. The step count is
// the explicit bound; there is no convergence condition to wait on.
func evalRecurrenceMod(cfg Config, env *Env) (float64, error) {
	seed, err := cfg.param("seed")
	if err != nil {
		return 0, err
	}
	modulus, err := cfg.param("modulus")
	if err != nil {
		return 0, err
	}
	steps, err := cfg.param("steps")
	if err != nil {
		return 0, err
	}
	m := int64(modulus)
	if m < 2 {
		return 0, fmt.Errorf("formula %q: modulus %d must be ≥ 2: %w", cfg.Formula, m, ErrBadConfig)
	}
	count := int(steps)
	if count < 0 || count > defaultMaxSteps*100 {
		return 0, fmt.Errorf("formula %q: step count %d out of range: %w", cfg.Formula, count, ErrBadConfig)
	}
	offset := int64(cfg.paramOr("offset", 1))

	x := ((int64(seed) % m) + m) % m
	for i := 0; i < count; i++ {
		x = (x*x + offset) % m
		if x < 0 {
			x += m
		}
	}
	return float64(x), nil
}
