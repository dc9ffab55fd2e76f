// Package wave evaluates the parametrized oscillatory function
//
//	ψ(x) = sin(φ·√2·θ·x)·exp(−x²/φ) + cos(π·x/φ)
//
// over dense sample domains and locates its nulls — points where |ψ(x)|
// falls below a configured tolerance.
//
// 🚀 Usage:
//
//	opts := wave.DefaultOptions()        // θ = 51.85° in radians
//	ev, _ := wave.New(reg, &opts)
//	y := ev.Evaluate(0.039)
//	nulls, _ := ev.FindNulls(-10, 10)    // {x, residual} per detection
//	d, _ := ev.ZeroSetDimension(-10, 10, 8, nil)
//
// ⚠️ Accuracy is sampling-bounded. FindNulls inspects only the lattice
// points from+k·Step; it performs no root refinement between samples, so a
// zero crossing narrower than the step can be missed and every reported x
// is accurate only to ±Step/2. Tighten Options.Step (within the sample
// budget) for sharper detection — the engine never pretends the scan is
// exact.
//
// The zero-set fractal dimension reuses the tensor package's box-counting
// estimator over the detected null positions.
package wave
