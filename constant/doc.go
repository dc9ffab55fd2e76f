// Package constant computes the fixed irrational and geometric constants the
// rest of the harness consumes: the golden ratio φ, √2, √3, √5, π, the
// golden slope arctan(√φ), and the Giza ratios (height/half-base, slope
// angle, perimeter/height, corridor/base).
//
// 🚀 What is a Registry?
//
//	An immutable table of named Constant values, computed once at a
//	configured decimal precision and frozen. Consumers receive the registry
//	by reference and never recompute a constant ad hoc:
//
//	  reg, err := constant.New(50)          // 50 decimal digits
//	  phi, err := reg.Get(constant.Phi)     // {name, definition, value}
//	  x := phi.Float64()                    // nearest float64
//
// ✨ Properties:
//
//   - Deterministic: a (name, precision) pair always yields the same value.
//   - Pure: no external state; every value derives from its formula alone.
//   - Frozen: the table is fully built inside New and read-only afterwards.
//
// Values are carried on math/big.Float at precision×3.32 bits (decimal
// digits to mantissa bits). Square roots use big.Float.Sqrt; π uses the
// Machin formula evaluated in big arithmetic. The two angle constants are
// derived through float64 arctangent and are therefore accurate to ~1e-15
// degrees — far inside the 1e-3 envelope the catalogued angles are quoted
// at, but not to the full registry precision.
package constant
