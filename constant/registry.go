// SPDX-License-Identifier: MIT
// Package constant: the Registry itself.
// This file holds the public construction/lookup surface and the per-name
// builders. All arithmetic runs on big.Float at the registry's bit width;
// helpers for the two series-based values live in series.go.

package constant

import (
	"fmt"
	"math"
	"math/big"
	"sort"
)

// Canonical constant names. Get accepts exactly these strings; anything else
// yields ErrUnknownName.
const (
	Phi   = "phi"   // golden ratio (1+√5)/2
	Sqrt2 = "sqrt2" // √2
	Sqrt3 = "sqrt3" // √3
	Sqrt5 = "sqrt5" // √5
	Pi    = "pi"    // π via Machin's formula

	// GoldenRatioSlopeDegrees is arctan(√φ) expressed in degrees, the apex
	// angle of the Kepler triangle (≈51.8273°). Note this is ~0.03° away
	// from the catalogued Giza slope; both are exposed, neither is fudged
	// toward the other.
	GoldenRatioSlopeDegrees = "goldenRatioSlopeDegrees"

	// GizaHeightHalfBase is the design ratio height/(base/2) = 280/220
	// royal cubits = 14/11.
	GizaHeightHalfBase = "gizaHeightHalfBase"

	// GizaSlopeDegrees is arctan(14/11) in degrees (≈51.8428°).
	GizaSlopeDegrees = "gizaSlopeDegrees"

	// GizaPerimeterHeight is perimeter/height = 4·440/280 = 44/7 (≈2π).
	GizaPerimeterHeight = "gizaPerimeterHeight"

	// GizaCorridorBase is the descending-corridor length over the base side,
	// from the surveyed metre values 105.15/230.36.
	GizaCorridorBase = "gizaCorridorBase"
)

// Precision bounds and conversion.
const (
	// DefaultPrecision is the decimal-digit precision used when callers have
	// no stronger requirement.
	DefaultPrecision = 50

	// MaxPrecision bounds runaway requests; beyond it New returns
	// ErrBadPrecision rather than attempting the allocation.
	MaxPrecision = 10000

	// bitsPerDigit converts decimal digits to mantissa bits (log₂10).
	bitsPerDigit = 3.3219280948873623

	// guardBits pads the working width so series truncation and rounding
	// stay below the requested precision.
	guardBits = 16
)

// Design dimensions behind the Giza ratios. Cubit values are the accepted
// design figures; metre values are K. M. Lehner's survey numbers.
const (
	gizaBaseCubits    = 440
	gizaHeightCubits  = 280
	gizaCorridorMetre = 105.15
	gizaBaseMetre     = 230.36
)

// Constant is one named registry entry: a symbolic definition and its value
// at the registry precision. Values are never mutated after construction.
type Constant struct {
	Name       string     // canonical name, one of the constants above
	Definition string     // human-readable symbolic form, e.g. "(1+√5)/2"
	Value      *big.Float // value at the registry's bit width
}

// Float64 returns the nearest float64 to the constant's value.
func (c Constant) Float64() float64 {
	f, _ := c.Value.Float64()
	return f
}

// Registry is the immutable constant table. Safe for concurrent readers:
// nothing is written after New returns.
type Registry struct {
	precision int                 // decimal digits requested
	bits      uint                // working mantissa width
	table     map[string]Constant // frozen after New
	names     []string            // sorted keys, for deterministic iteration
}

// New builds the full registry at the given decimal precision.
//
// Stage 1 (Validate): 1 ≤ precision ≤ MaxPrecision.
// Stage 2 (Execute): compute every constant eagerly at precision×log₂10 +
// guard bits; the golden ratio is built first — if it cannot be represented
// the whole construction fails, since nothing downstream is meaningful
// without it.
// Stage 3 (Finalize): freeze the table and the sorted name list.
//
// Complexity: dominated by the π series, O(precision) terms of big.Float
// work. Every other entry is O(1) big operations.
func New(precision int) (*Registry, error) {
	if precision < 1 || precision > MaxPrecision {
		return nil, fmt.Errorf("New(%d): %w", precision, ErrBadPrecision)
	}
	bits := uint(float64(precision)*bitsPerDigit) + guardBits

	r := &Registry{
		precision: precision,
		bits:      bits,
		table:     make(map[string]Constant, 10),
	}

	// φ first: (1+√5)/2. Sqrt returns NaN-free results for non-negative
	// finite inputs, so the only representation failure mode is an absurd
	// bit width, which Stage 1 already rejected.
	sqrt5 := bigSqrt(big.NewFloat(5).SetPrec(bits), bits)
	phi := new(big.Float).SetPrec(bits).Add(big.NewFloat(1), sqrt5)
	phi.Quo(phi, big.NewFloat(2))
	if phi.IsInf() {
		return nil, fmt.Errorf("New(%d): golden ratio not representable: %w", precision, ErrBadPrecision)
	}
	r.add(Phi, "(1+√5)/2", phi)
	r.add(Sqrt5, "√5", sqrt5)
	r.add(Sqrt2, "√2", bigSqrt(big.NewFloat(2).SetPrec(bits), bits))
	r.add(Sqrt3, "√3", bigSqrt(big.NewFloat(3).SetPrec(bits), bits))
	r.add(Pi, "16·arctan(1/5) − 4·arctan(1/239)", machinPi(bits))

	// Angle constants: derived through float64 atan (see package doc for the
	// accuracy bound).
	phi64, _ := phi.Float64()
	goldenSlope := math.Atan(math.Sqrt(phi64)) * 180 / math.Pi
	r.add(GoldenRatioSlopeDegrees, "arctan(√φ)·180/π", big.NewFloat(goldenSlope).SetPrec(bits))

	heightHalfBase := new(big.Float).SetPrec(bits).Quo(
		big.NewFloat(gizaHeightCubits),
		big.NewFloat(gizaBaseCubits/2),
	)
	r.add(GizaHeightHalfBase, "280/220 cubits", heightHalfBase)

	hb64, _ := heightHalfBase.Float64()
	gizaSlope := math.Atan(hb64) * 180 / math.Pi
	r.add(GizaSlopeDegrees, "arctan(280/220)·180/π", big.NewFloat(gizaSlope).SetPrec(bits))

	r.add(GizaPerimeterHeight, "4·440/280 cubits",
		new(big.Float).SetPrec(bits).Quo(big.NewFloat(4*gizaBaseCubits), big.NewFloat(gizaHeightCubits)))
	r.add(GizaCorridorBase, "105.15/230.36 m",
		new(big.Float).SetPrec(bits).Quo(big.NewFloat(gizaCorridorMetre), big.NewFloat(gizaBaseMetre)))

	sort.Strings(r.names)
	return r, nil
}

// add registers one entry during construction. Only New calls it.
func (r *Registry) add(name, definition string, v *big.Float) {
	r.table[name] = Constant{Name: name, Definition: definition, Value: v}
	r.names = append(r.names, name)
}

// Get returns the named constant or ErrUnknownName. O(1).
func (r *Registry) Get(name string) (Constant, error) {
	c, ok := r.table[name]
	if !ok {
		return Constant{}, fmt.Errorf("Get(%q): %w", name, ErrUnknownName)
	}
	return c, nil
}

// Float64 is a convenience lookup returning the nearest float64 directly.
func (r *Registry) Float64(name string) (float64, error) {
	c, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	return c.Float64(), nil
}

// Precision reports the decimal precision the registry was built at.
func (r *Registry) Precision() int { return r.precision }

// Names returns the sorted constant names. The slice is a copy; the registry
// stays frozen.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
