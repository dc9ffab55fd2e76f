// SPDX-License-Identifier: MIT
// Package constant: big.Float kernels for the series-based values.
// Kept separate from the registry surface so the arithmetic can be read (and
// tested) in isolation.

package constant

import "math/big"

// bigSqrt returns √x at the given bit width. Thin wrapper kept so every
// call site carries the width explicitly.
func bigSqrt(x *big.Float, bits uint) *big.Float {
	return new(big.Float).SetPrec(bits).Sqrt(x)
}

// machinPi evaluates π = 16·arctan(1/5) − 4·arctan(1/239) at the requested
// bit width. The two series run at width+guardBits so the final rounding is
// the only precision loss.
//
// Complexity: O(bits) series terms; arctan(1/5) converges ~4.6 bits/term.
func machinPi(bits uint) *big.Float {
	work := bits + guardBits
	pi := new(big.Float).SetPrec(work).Mul(big.NewFloat(16), atanInv(5, work))
	pi.Sub(pi, new(big.Float).SetPrec(work).Mul(big.NewFloat(4), atanInv(239, work)))
	return pi.SetPrec(bits)
}

// atanInv evaluates arctan(1/k) for integer k ≥ 2 by the alternating Taylor
// series Σ (−1)ⁱ·x^(2i+1)/(2i+1) with x = 1/k.
//
// Stage 1 (Prepare): pow = 1/k, the running odd power of x.
// Stage 2 (Execute): add pow/(2i+1) with alternating sign, stepping
// pow ← pow/k² each iteration.
// Stage 3 (Finalize): stop once pow drops below one ulp of the working
// width; the alternating-series remainder is below the first dropped term.
func atanInv(k int64, work uint) *big.Float {
	kSquared := new(big.Float).SetPrec(work).SetInt64(k * k)
	pow := new(big.Float).SetPrec(work).Quo(big.NewFloat(1), new(big.Float).SetInt64(k))
	sum := new(big.Float).SetPrec(work).Set(pow)

	// One ulp at the working width; once pow is below it, further terms
	// cannot change the rounded sum.
	ulp := new(big.Float).SetPrec(work).SetMantExp(big.NewFloat(1), -int(work))

	term := new(big.Float).SetPrec(work)
	for i, sign := int64(1), int64(-1); ; i, sign = i+1, -sign {
		pow.Quo(pow, kSquared)
		if pow.Cmp(ulp) < 0 {
			return sum
		}
		term.Quo(pow, new(big.Float).SetInt64(2*i+1))
		if sign < 0 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
}
