// Package seq generates the integer sequences of the harness — Fibonacci,
// Lucas, Pell, golden-ratio powers and digital roots — together with their
// modular derivatives: residue-period detection (Pisano-style), the TTT
// digit-reduction cycle, and hybrid (Lucas+Pell) residue sequences.
//
// 🚀 What does it provide?
//
//	seq.Generate(seq.Fibonacci, 0, 30, &opts)     // big.Int values F₀..F₃₀
//	seq.ResiduePeriod(seq.Fibonacci, 9, &opts)    // detected period = 24
//	seq.NewTTTCycle(240, 24, &opts)               // TTT(n), detected period,
//	                                              // attractor set, discrepancy
//	seq.Hybrid(0, 100, 9, &opts)                  // (L(n)+P(n)) mod 9
//
// ✨ Guarantees:
//
//   - Exact: integer kinds run on math/big.Int, never floats.
//   - Detected, not assumed: every period is found by scanning residues
//     until the initial state recurs; a caller-claimed period that
//     disagrees is recorded as a discrepancy, never silently adopted.
//   - Bounded: every generator honors Options.MaxLength and refuses
//     runaway ranges instead of looping.
//
// Digital root convention: DigitalRoot(0)=0 and DigitalRoot(n)=1+(n−1) mod 9
// for n>0, so the value is always in [1,9] for positive input.
package seq
