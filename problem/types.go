// SPDX-License-Identifier: MIT
// Package problem: configuration and environment types.

package problem

import (
	"fmt"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/constant"
	"github.com/jtrag/phiverify/seq"
	"github.com/jtrag/phiverify/tensor"
	"github.com/jtrag/phiverify/wave"
)

var (
	// ErrBadConfig marks a Config failing static validation (empty id,
	// negative tolerance, non-finite target).
	ErrBadConfig = fmt.Errorf("problem: malformed config: %w", phiverify.ErrConfiguration)

	// ErrUnknownFormula marks a Config naming an unregistered formula.
	ErrUnknownFormula = fmt.Errorf("problem: unknown formula: %w", phiverify.ErrConfiguration)

	// ErrMissingRef marks a formula whose required dependency reference is
	// absent from Config.Refs.
	ErrMissingRef = fmt.Errorf("problem: missing dependency reference: %w", phiverify.ErrConfiguration)

	// ErrMissingParam marks a formula whose required numeric parameter is
	// absent from Config.Params.
	ErrMissingParam = fmt.Errorf("problem: missing parameter: %w", phiverify.ErrConfiguration)

	// ErrNilEnv marks evaluation against a nil or incomplete environment.
	ErrNilEnv = fmt.Errorf("problem: nil evaluation environment: %w", phiverify.ErrConfiguration)

	// ErrIterationBudget marks an auxiliary iteration that did not
	// terminate within its configured step budget.
	ErrIterationBudget = fmt.Errorf("problem: iteration budget exhausted: %w", phiverify.ErrPrecisionInsufficient)
)

// Config is one declarative verification case. Immutable once loaded; the
// engine only ever reads it.
//
// Fields:
//   - ID        — unique problem identifier; report ordering key.
//   - Formula   — registered formula name (see formulas.go).
//   - Refs      — named symbolic dependencies, e.g. {"constant": "phi"} or
//     {"sequence": "fibonacci"}.
//   - Params    — named numeric parameters, e.g. {"index": 10}.
//   - Target    — the asserted value.
//   - Tolerance — the comparison envelope; 0 demands exact equality.
//   - Precision — decimal digits for this case's registry, 0 for the run
//     default.
type Config struct {
	ID        string             `json:"id" yaml:"id"`
	Formula   string             `json:"formula" yaml:"formula"`
	Refs      map[string]string  `json:"refs,omitempty" yaml:"refs,omitempty"`
	Params    map[string]float64 `json:"params,omitempty" yaml:"params,omitempty"`
	Target    float64            `json:"target" yaml:"target"`
	Tolerance float64            `json:"tolerance" yaml:"tolerance"`
	Precision int                `json:"precision,omitempty" yaml:"precision,omitempty"`
}

// Env is the frozen dependency bundle every formula draws from. All fields
// are computed once per run and read-only afterwards; evaluators must not
// mutate anything reachable from here.
type Env struct {
	Registry   *constant.Registry
	Tensor     *tensor.Dense
	Wave       *wave.Evaluator
	SeqOpts    seq.Options
	TensorOpts tensor.Options
}

// ref fetches a required symbolic dependency.
func (c Config) ref(name string) (string, error) {
	v, ok := c.Refs[name]
	if !ok || v == "" {
		return "", fmt.Errorf("ref %q: %w", name, ErrMissingRef)
	}
	return v, nil
}

// param fetches a required numeric parameter.
func (c Config) param(name string) (float64, error) {
	v, ok := c.Params[name]
	if !ok {
		return 0, fmt.Errorf("param %q: %w", name, ErrMissingParam)
	}
	return v, nil
}

// paramOr fetches an optional numeric parameter with a default.
func (c Config) paramOr(name string, def float64) float64 {
	if v, ok := c.Params[name]; ok {
		return v
	}
	return def
}
