// Package tensor builds the five-index numeric array of the harness and
// derives its scalar statistics: a trace-normalized spectral entropy, a
// box-counting fractal dimension, and a Hurst exponent.
//
// 🚀 What does it provide?
//
//	dims := tensor.Dims{3, 3, 3, 3, 3}
//	f, _ := tensor.LookupFormula(tensor.FormulaGoldenPhase)
//	tns, _ := tensor.Build(dims, f, reg)       // cell values from config
//	h, _ := tensor.Entropy(tns, &opts)         // −Tr(ρ·log ρ), ρ = M/Tr(M)
//	d, _ := tensor.FractalDimension(pts, 8, &opts)
//	hu, _ := tensor.Hurst(series, &opts)
//
// ✨ Design:
//
//   - The per-cell formula is configuration, not code: formulas live in a
//     named registry and Build takes one as a value, so alternative
//     generators substitute without touching the engine.
//   - Entropy unfolds the tensor into A (d₀·d₁ × d₂·d₃·d₄), forms the
//     contraction M = A·Aᵀ, normalizes by trace and sums −λ·log(λ+ε) over
//     the eigenvalues. The result is bounded by log(d₀·d₁); a near-zero
//     trace is refused as numeric instability.
//   - Both statistical estimators are budgeted: too few scales, windows or
//     samples — or a budget overrun — yields a precision-insufficient
//     error instead of a blocked or garbage run.
//
// Spectral work (EigenSym) and the log-log slope fits (LinearRegression)
// run on gonum; the rank-5 store itself is a flat row-major slice with
// precomputed strides.
package tensor
