// Package phiverify is a deterministic computation-and-verification harness
// for closed-form golden-ratio numerics: fixed irrational and geometric
// constants, integer sequences and their digit-reduction cycles, a
// five-index tensor with spectral statistics, and a parametrized wave
// function — each evaluated at controlled precision and checked against a
// declarative target/tolerance table.
//
// 🚀 What is phiverify?
//
//	A small, pure-Go verification engine built from leaf components:
//	  • constant   — immutable registry of φ, √2, √3, π and Giza ratios
//	  • seq        — Fibonacci/Lucas/Pell, golden powers, digital roots,
//	                 residue-period detection (Pisano-style)
//	  • tensor     — rank-5 value store, spectral entropy, box-counting
//	                 fractal dimension, Hurst exponent
//	  • wave       — oscillatory ψ(x) sampling and null detection
//	  • problem    — declarative per-case mapping onto a verdict
//	  • report     — pure aggregation into a serializable report
//	  • problemset — the data-only case table and its YAML loader
//	  • pipeline   — compute-once-then-freeze orchestration
//
// ✨ Guarantees:
//
//   - Deterministic: identical configuration ⇒ byte-identical report.
//   - Pure core: no network, no filesystem, no hidden global state.
//   - Localized failure: a broken case yields an Error verdict; the
//     remaining cases still produce a complete report.
//
// Data flows strictly upward: constant → seq/tensor/wave → problem →
// report. Every formula is configuration data, never an engine branch, so
// new cases can be added without touching any engine package.
//
// The harness verifies arithmetic, not mathematics: a Passed verdict means
// a formula landed within tolerance of its target, nothing more.
//
//	go get github.com/jtrag/phiverify
package phiverify
