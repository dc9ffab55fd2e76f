// SPDX-License-Identifier: MIT
// Package problem: the evaluation boundary.
// Evaluate is the single place where dependency failures become verdicts.
// Everything below it returns errors; everything above it sees records.

package problem

import (
	"errors"
	"fmt"
	"math"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/report"
)

// Evaluate runs one configured case against the frozen environment and
// always yields a record — malformed configs and unstable computations
// produce Errored records, never propagated errors.
//
// Stage 1 (Validate): static config checks, environment presence.
// Stage 2 (Execute): resolve the formula and compute the value.
// Stage 3 (Verdict): Passed when |computed − target| ≤ tolerance, Failed
// beyond it, Errored when any stage raised a taxonomy failure.
func Evaluate(cfg Config, env *Env) report.Record {
	rec := report.Record{
		ProblemID: cfg.ID,
		Target:    cfg.Target,
		Tolerance: cfg.Tolerance,
	}

	computed, err := compute(cfg, env)
	if err != nil {
		rec.Verdict = report.Errored
		rec.Reason = reason(err)
		return rec
	}

	rec.Computed = computed
	if math.Abs(computed-cfg.Target) <= cfg.Tolerance {
		rec.Verdict = report.Passed
	} else {
		rec.Verdict = report.Failed
	}
	return rec
}

// compute validates and executes one case.
func compute(cfg Config, env *Env) (float64, error) {
	if cfg.ID == "" {
		return 0, fmt.Errorf("compute: empty problem id: %w", ErrBadConfig)
	}
	if cfg.Tolerance < 0 {
		return 0, fmt.Errorf("compute(%s): negative tolerance: %w", cfg.ID, ErrBadConfig)
	}
	if math.IsNaN(cfg.Target) || math.IsInf(cfg.Target, 0) {
		return 0, fmt.Errorf("compute(%s): non-finite target: %w", cfg.ID, ErrBadConfig)
	}
	if env == nil || env.Registry == nil {
		return 0, fmt.Errorf("compute(%s): %w", cfg.ID, ErrNilEnv)
	}

	f, err := LookupFormula(cfg.Formula)
	if err != nil {
		return 0, fmt.Errorf("compute(%s): %w", cfg.ID, err)
	}
	v, err := f(cfg, env)
	if err != nil {
		return 0, fmt.Errorf("compute(%s): %w", cfg.ID, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("compute(%s): non-finite result: %w", cfg.ID, phiverify.ErrNumericInstability)
	}
	return v, nil
}

// reason renders a deterministic failure string, prefixed with the taxonomy
// class so presentation layers can group errors without re-parsing details.
func reason(err error) string {
	switch {
	case errors.Is(err, phiverify.ErrConfiguration):
		return "configuration: " + err.Error()
	case errors.Is(err, phiverify.ErrNumericInstability):
		return "numeric: " + err.Error()
	case errors.Is(err, phiverify.ErrPrecisionInsufficient):
		return "precision: " + err.Error()
	default:
		return "internal: " + err.Error()
	}
}
