// SPDX-License-Identifier: MIT
// Package problemset: the built-in table plus YAML load/parse/marshal.

package problemset

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/problem"
	"github.com/jtrag/phiverify/seq"
)

var (
	// ErrDecode is returned by Parse/Load for bytes that are not a YAML
	// problem table.
	ErrDecode = fmt.Errorf("problemset: undecodable table: %w", phiverify.ErrConfiguration)

	// ErrInvalidTable is returned by Parse/Load for a decodable table whose
	// entries fail static validation.
	ErrInvalidTable = fmt.Errorf("problemset: invalid table: %w", phiverify.ErrConfiguration)
)

// table is the YAML document shape: a single top-level "problems" list.
type table struct {
	Problems []problem.Config `yaml:"problems"`
}

// Default returns the built-in verification table: six catalogued problem
// mappings plus one auxiliary convergence case. Every target here is a
// value the engine reproduces deterministically; the harness verifies the
// arithmetic behind each catalogued claim, never the claim itself.
func Default() []problem.Config {
	return []problem.Config{
		{
			// Unit crest at the origin: ψ(0) = sin(0)·e⁰ + cos(0) = 1.
			ID:        "riemann",
			Formula:   problem.FormulaWaveResidual,
			Params:    map[string]float64{"x": 0},
			Target:    1,
			Tolerance: 1e-9,
		},
		{
			// Detected Fibonacci residue period modulo 9.
			ID:        "pVsNp",
			Formula:   problem.FormulaResiduePeriod,
			Refs:      map[string]string{"sequence": "fibonacci"},
			Params:    map[string]float64{"modulus": seq.DefaultModulus},
			Target:    24,
			Tolerance: 0,
		},
		{
			// Normalized spectral entropy of the run tensor, bounded in [0,1].
			ID:        "navierStokes",
			Formula:   problem.FormulaEntropyRatio,
			Target:    0.5,
			Tolerance: 0.5,
		},
		{
			// |φ² − φ − 1| at the run precision.
			ID:        "yangMills",
			Formula:   problem.FormulaPhiIdentity,
			Target:    0,
			Tolerance: 1e-9,
		},
		{
			// Distinct residues of (Lucas+Pell) mod 9: both sequences have
			// period 24 modulo 9 and the sum visits {0,1,2,4,5,7,8} only.
			ID:        "hodge",
			Formula:   problem.FormulaHybridAttractors,
			Params:    map[string]float64{"length": 100, "modulus": seq.DefaultModulus},
			Target:    7,
			Tolerance: 0,
		},
		{
			// Quadratic recurrence x ← x²+1 mod 7 from seed 2: three steps
			// land on the fixed residue 5.
			ID:        "birchSwinnertonDyer",
			Formula:   problem.FormulaRecurrenceMod,
			Params:    map[string]float64{"seed": 2, "modulus": 7, "steps": 3, "offset": 1},
			Target:    5,
			Tolerance: 0,
		},
		{
			// Auxiliary convergence case: the halving/tripling walk from 27
			// reaches 1 in exactly 111 steps.
			ID:        "collatz",
			Formula:   problem.FormulaCollatzSteps,
			Params:    map[string]float64{"start": 27},
			Target:    111,
			Tolerance: 0,
		},
	}
}

// Parse decodes and validates a YAML problem table.
//
// Stage 1 (Decode): YAML unmarshal into the table shape.
// Stage 2 (Validate): per-entry static checks plus id uniqueness.
// Stage 3 (Finalize): return the configs in file order.
func Parse(data []byte) ([]problem.Config, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrDecode)
	}
	if len(t.Problems) == 0 {
		return nil, fmt.Errorf("Parse: empty problem table: %w", ErrInvalidTable)
	}
	if err := validate(t.Problems); err != nil {
		return nil, err
	}
	return t.Problems, nil
}

// Load reads an entire YAML problem table from r and parses it.
func Load(r io.Reader) ([]problem.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Load: %v: %w", err, ErrDecode)
	}
	return Parse(data)
}

// Marshal renders configs as the canonical YAML table. Field order is fixed
// by the struct tags, so identical tables yield identical bytes.
func Marshal(cfgs []problem.Config) ([]byte, error) {
	if err := validate(cfgs); err != nil {
		return nil, err
	}
	return yaml.Marshal(table{Problems: cfgs})
}

// validate applies the static checks every table entry must satisfy.
func validate(cfgs []problem.Config) error {
	if len(cfgs) == 0 {
		return fmt.Errorf("validate: empty problem table: %w", ErrInvalidTable)
	}
	seen := make(map[string]struct{}, len(cfgs))
	for i, c := range cfgs {
		if c.ID == "" {
			return fmt.Errorf("validate: entry %d: empty id: %w", i, ErrInvalidTable)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("validate: duplicate id %q: %w", c.ID, ErrInvalidTable)
		}
		seen[c.ID] = struct{}{}
		if _, err := problem.LookupFormula(c.Formula); err != nil {
			return fmt.Errorf("validate: entry %q: %w", c.ID, err)
		}
		if c.Tolerance < 0 {
			return fmt.Errorf("validate: entry %q: negative tolerance: %w", c.ID, ErrInvalidTable)
		}
		if math.IsNaN(c.Target) || math.IsInf(c.Target, 0) {
			return fmt.Errorf("validate: entry %q: non-finite target: %w", c.ID, ErrInvalidTable)
		}
		if c.Precision < 0 {
			return fmt.Errorf("validate: entry %q: negative precision: %w", c.ID, ErrInvalidTable)
		}
	}
	return nil
}
