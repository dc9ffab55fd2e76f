// SPDX-License-Identifier: MIT
// Package seq: sequence generation.
// All integer kinds run one shared second-order recurrence kernel on
// math/big.Int; GoldenPower runs on the registry's big.Float φ so its
// precision policy matches every other formula in the harness.

package seq

import (
	"fmt"
	"math"
	"math/big"

	"github.com/jtrag/phiverify/constant"
)

// Generate produces the values of kind over the inclusive range [from, to].
//
// Stage 1 (Validate): 0 ≤ from ≤ to, and to+1 within opts.MaxLength.
// Stage 2 (Execute): run the kind's recurrence from index 0 (recurrences
// have no random access), or the closed form for DigitalRoot/GoldenPower.
// Stage 3 (Finalize): slice out [from, to] into a frozen Sequence.
//
// Errors: ErrBadRange, ErrRangeExceeded, ErrBadKind, ErrMissingRegistry
// (GoldenPower without a registry), ErrOverflow (φⁿ beyond float64).
// Complexity: O(to) big-int additions for recurrences; O(n) otherwise.
func Generate(kind Kind, from, to int, opts *Options) (*Sequence, error) {
	o := normalized(opts)
	if from < 0 || to < from {
		return nil, fmt.Errorf("Generate(%s, %d, %d): %w", kind, from, to, ErrBadRange)
	}
	if to+1 > o.MaxLength {
		return nil, fmt.Errorf("Generate(%s, %d, %d): %w", kind, from, to, ErrRangeExceeded)
	}

	s := &Sequence{Kind: kind, From: from, To: to}
	switch kind {
	case Fibonacci:
		s.Ints = recurrence(0, 1, 1, to)[from:]
	case Lucas:
		s.Ints = recurrence(2, 1, 1, to)[from:]
	case Pell:
		s.Ints = recurrence(0, 1, 2, to)[from:]
	case DigitalRoot:
		s.Ints = make([]*big.Int, 0, to-from+1)
		for n := from; n <= to; n++ {
			s.Ints = append(s.Ints, big.NewInt(int64(Root(int64(n)))))
		}
	case GoldenPower:
		reals, err := goldenPowers(from, to, o.Registry)
		if err != nil {
			return nil, fmt.Errorf("Generate(%s, %d, %d): %w", kind, from, to, err)
		}
		s.Reals = reals
	default:
		return nil, fmt.Errorf("Generate(%d, %d, %d): %w", kind, from, to, ErrBadKind)
	}
	return s, nil
}

// Hybrid produces H(n) = (Lucas(n) + Pell(n)) mod modulus over [from, to].
// Same validation rules as Generate; modulus must be ≥ 2.
func Hybrid(from, to, modulus int, opts *Options) (*Sequence, error) {
	o := normalized(opts)
	if modulus < 2 {
		return nil, fmt.Errorf("Hybrid(%d, %d, mod %d): %w", from, to, modulus, ErrBadModulus)
	}
	if from < 0 || to < from {
		return nil, fmt.Errorf("Hybrid(%d, %d, mod %d): %w", from, to, modulus, ErrBadRange)
	}
	if to+1 > o.MaxLength {
		return nil, fmt.Errorf("Hybrid(%d, %d, mod %d): %w", from, to, modulus, ErrRangeExceeded)
	}

	lucas := recurrence(2, 1, 1, to)
	pell := recurrence(0, 1, 2, to)
	m := big.NewInt(int64(modulus))
	vals := make([]*big.Int, 0, to-from+1)
	sum := new(big.Int)
	for n := from; n <= to; n++ {
		sum.Add(lucas[n], pell[n])
		vals = append(vals, new(big.Int).Mod(sum, m))
	}
	return &Sequence{Kind: HybridKind, From: from, To: to, Ints: vals}, nil
}

// recurrence computes a(n) = p·a(n−1) + a(n−2) for n = 0..to with the given
// seeds. Returned values are freshly allocated; callers may keep slices.
func recurrence(a0, a1 int64, p int64, to int) []*big.Int {
	out := make([]*big.Int, to+1)
	out[0] = big.NewInt(a0)
	if to >= 1 {
		out[1] = big.NewInt(a1)
	}
	mul := big.NewInt(p)
	for n := 2; n <= to; n++ {
		out[n] = new(big.Int).Mul(mul, out[n-1])
		out[n].Add(out[n], out[n-2])
	}
	return out
}

// goldenPowers computes φⁿ for n in [from, to] by repeated multiplication at
// the registry's precision, then rounds each power to float64.
func goldenPowers(from, to int, reg *constant.Registry) ([]float64, error) {
	if reg == nil {
		return nil, ErrMissingRegistry
	}
	phi, err := reg.Get(constant.Phi)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, to-from+1)
	pow := big.NewFloat(1).SetPrec(phi.Value.Prec())
	for n := 0; n <= to; n++ {
		if n >= from {
			f, _ := pow.Float64()
			if math.IsInf(f, 0) {
				return nil, fmt.Errorf("φ^%d: %w", n, ErrOverflow)
			}
			out = append(out, f)
		}
		pow.Mul(pow, phi.Value)
	}
	return out, nil
}

// normalized applies defaults for a nil or zero-valued Options.
func normalized(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	o := *opts
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	return o
}
