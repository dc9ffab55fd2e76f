// SPDX-License-Identifier: MIT
// Package seq: domain types and options.

package seq

import (
	"math/big"

	"github.com/jtrag/phiverify/constant"
)

// Kind enumerates the supported sequence families.
type Kind int

const (
	// Fibonacci: F(0)=0, F(1)=1, F(n)=F(n−1)+F(n−2).
	Fibonacci Kind = iota
	// Lucas: L(0)=2, L(1)=1, L(n)=L(n−1)+L(n−2).
	Lucas
	// Pell: P(0)=0, P(1)=1, P(n)=2·P(n−1)+P(n−2).
	Pell
	// GoldenPower: φⁿ, carried as float64 (the only non-integer kind).
	GoldenPower
	// DigitalRoot: 1+(n−1) mod 9 for n>0, 0 for n=0.
	DigitalRoot
	// HybridKind: (Lucas(n)+Pell(n)) mod m; produced by Hybrid, not Generate.
	HybridKind
)

// kindNames maps Kind to its canonical config-table spelling.
var kindNames = map[Kind]string{
	Fibonacci:   "fibonacci",
	Lucas:       "lucas",
	Pell:        "pell",
	GoldenPower: "goldenPower",
	DigitalRoot: "digitalRoot",
	HybridKind:  "hybrid",
}

// String returns the canonical name, or "unknown" for an invalid Kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind resolves a config-table spelling back to its Kind.
// Returns ErrBadKind for anything unrecognized.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, ErrBadKind
}

// Sequence is an ordered, frozen slice of values over an inclusive index
// range. Integer kinds populate Ints; GoldenPower populates Reals. Nothing
// is mutated after the generator returns.
type Sequence struct {
	Kind     Kind
	From, To int        // inclusive index range
	Ints     []*big.Int // integer-valued kinds; nil for GoldenPower
	Reals    []float64  // GoldenPower; nil otherwise
}

// Len returns the number of generated values.
func (s *Sequence) Len() int { return s.To - s.From + 1 }

// IntAt returns the value at absolute index n for integer kinds.
func (s *Sequence) IntAt(n int) (*big.Int, error) {
	if s.Ints == nil {
		return nil, ErrBadKind
	}
	if n < s.From || n > s.To {
		return nil, ErrBadRange
	}
	return s.Ints[n-s.From], nil
}

// Float64At returns the value at absolute index n as float64, for any kind.
// Integer values outside float64's exact range lose precision here; callers
// needing exactness use IntAt.
func (s *Sequence) Float64At(n int) (float64, error) {
	if n < s.From || n > s.To {
		return 0, ErrBadRange
	}
	if s.Reals != nil {
		return s.Reals[n-s.From], nil
	}
	f, _ := new(big.Float).SetInt(s.Ints[n-s.From]).Float64()
	return f, nil
}

// Cycle is a detected residue period: the smallest step count after which
// the initial recurrence state repeats under the modulus.
type Cycle struct {
	Kind     Kind
	Modulus  int
	Period   int   // detected length, e.g. 24 for Fibonacci mod 9
	Residues []int // one full cycle of residues, length == Period
}

// Default generation limits.
const (
	// DefaultMaxLength bounds any single generation or scan.
	DefaultMaxLength = 100_000

	// DefaultModulus is the digit-reduction base used across the harness.
	DefaultModulus = 9
)

// Options configures the generators.
//
// Fields:
//   - MaxLength — hard cap on generated values and residue-scan steps;
//     exceeding it yields ErrRangeExceeded (generation) or
//     ErrPeriodNotFound (scans).
//   - Registry  — constant registry supplying φ for GoldenPower and TTT.
//     Integer kinds ignore it.
type Options struct {
	MaxLength int
	Registry  *constant.Registry
}

// DefaultOptions returns the documented defaults. The registry is left nil;
// callers wire their own so φ is computed exactly once per run.
func DefaultOptions() Options {
	return Options{MaxLength: DefaultMaxLength}
}
