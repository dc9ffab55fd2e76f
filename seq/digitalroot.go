// SPDX-License-Identifier: MIT
// Package seq: digit-reduction helpers.

package seq

import "math/big"

// nine is the shared big modulus for digit reduction.
var nine = big.NewInt(9)

// Root returns the digital root of n: 0 for n ≤ 0, otherwise 1+(n−1) mod 9.
// The closed form is exactly repeated digit-summing for non-negative input;
// negative input has no digit expansion and maps to 0.
func Root(n int64) int {
	if n <= 0 {
		return 0
	}
	return int(1 + (n-1)%9)
}

// RootInt is Root over big integers. v must be non-negative; negative input
// maps to 0 like the int64 form.
func RootInt(v *big.Int) int {
	if v.Sign() <= 0 {
		return 0
	}
	r := int(new(big.Int).Mod(v, nine).Int64())
	if r == 0 {
		return 9
	}
	return r
}
