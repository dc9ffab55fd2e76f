// SPDX-License-Identifier: MIT
// Package tensor: tensor construction from declarative cell formulas.
// The engine never hard-codes a value generator: formulas are registered
// under names, looked up by configuration, and passed to Build as values.

package tensor

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/jtrag/phiverify/constant"
)

// Consts is the constant snapshot a cell formula may draw from. Build fills
// it from the run's registry so every cell sees the same frozen values.
type Consts struct {
	Phi   float64
	Sqrt2 float64
	Sqrt3 float64
	Pi    float64
}

// CellFormula computes one cell value from the five indices and the
// constant snapshot. Formulas must be pure and deterministic.
type CellFormula func(idx [Rank]int, c Consts) float64

// Built-in formula names.
const (
	// FormulaGoldenPhase: φ^(i₀+i₁−i₂−i₃+i₄) · cos(π·(i₀+i₄)/φ), damped by
	// √2/√3 on odd i₁+i₃ parity.
	FormulaGoldenPhase = "goldenPhase"

	// FormulaHarmonicMix: an alternative generator mixing the same four
	// constants through sin/cos terms; exists to prove the engine is
	// formula-agnostic.
	FormulaHarmonicMix = "harmonicMix"
)

var (
	formulaMu sync.RWMutex
	formulas  = map[string]CellFormula{
		FormulaGoldenPhase: goldenPhase,
		FormulaHarmonicMix: harmonicMix,
	}
)

// goldenPhase is the default generator.
func goldenPhase(idx [Rank]int, c Consts) float64 {
	signed := float64(idx[0] + idx[1] - idx[2] - idx[3] + idx[4])
	v := math.Pow(c.Phi, signed) * math.Cos(c.Pi*float64(idx[0]+idx[4])/c.Phi)
	if (idx[1]+idx[3])%2 != 0 {
		v *= c.Sqrt2 / c.Sqrt3
	}
	return v
}

// harmonicMix is the registered alternative generator.
func harmonicMix(idx [Rank]int, c Consts) float64 {
	return math.Sin(c.Sqrt2*float64(idx[0]+1))*math.Cos(c.Pi*float64(idx[2]-idx[4])/c.Phi) +
		float64(idx[1]-idx[3])/c.Sqrt3
}

// RegisterFormula adds a named formula. Re-registering a name overwrites it;
// empty names and nil formulas are rejected as configuration errors.
func RegisterFormula(name string, f CellFormula) error {
	if name == "" {
		return fmt.Errorf("RegisterFormula: empty name: %w", ErrUnknownFormula)
	}
	if f == nil {
		return fmt.Errorf("RegisterFormula(%q): %w", name, ErrNilFormula)
	}
	formulaMu.Lock()
	formulas[name] = f
	formulaMu.Unlock()
	return nil
}

// LookupFormula resolves a configured formula name.
func LookupFormula(name string) (CellFormula, error) {
	formulaMu.RLock()
	f, ok := formulas[name]
	formulaMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("LookupFormula(%q): %w", name, ErrUnknownFormula)
	}
	return f, nil
}

// FormulaNames returns the sorted registered names.
func FormulaNames() []string {
	formulaMu.RLock()
	out := make([]string, 0, len(formulas))
	for name := range formulas {
		out = append(out, name)
	}
	formulaMu.RUnlock()
	sort.Strings(out)
	return out
}

// Build evaluates the formula over every cell of a fresh tensor.
//
// Stage 1 (Validate): dims via NewDense; formula and registry non-nil.
// Stage 2 (Prepare): snapshot φ, √2, √3, π from the registry.
// Stage 3 (Execute): walk the index odometer in row-major order (last index
// fastest — deterministic, matches the flat layout) and fill each cell,
// refusing NaN/Inf immediately.
//
// Errors: ErrBadDims, ErrTooLarge, ErrNilFormula, ErrNonFinite, plus any
// registry lookup failure. Complexity: O(size) formula evaluations.
func Build(dims Dims, formula CellFormula, reg *constant.Registry) (*Dense, error) {
	if formula == nil {
		return nil, fmt.Errorf("Build(%v): %w", dims, ErrNilFormula)
	}
	t, err := NewDense(dims)
	if err != nil {
		return nil, fmt.Errorf("Build(%v): %w", dims, err)
	}

	c := Consts{}
	for name, dst := range map[string]*float64{
		constant.Phi:   &c.Phi,
		constant.Sqrt2: &c.Sqrt2,
		constant.Sqrt3: &c.Sqrt3,
		constant.Pi:    &c.Pi,
	} {
		v, err := reg.Float64(name)
		if err != nil {
			return nil, fmt.Errorf("Build(%v): %w", dims, err)
		}
		*dst = v
	}

	var idx [Rank]int
	for flat := range t.data {
		v := formula(idx, c)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Build(%v): cell %v: %w", dims, idx, ErrNonFinite)
		}
		t.data[flat] = v

		// Advance the odometer, last index fastest.
		for k := Rank - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < dims[k] {
				break
			}
			idx[k] = 0
		}
	}
	return t, nil
}
