// Package problem maps declarative per-problem configurations onto
// verification records. The engine is domain-agnostic: a Config names a
// formula, its dependency references and numeric parameters, a target and a
// tolerance — and nothing else. The six shipped problem cases differ only
// in that data; none of them owns a code branch here.
//
// 🚀 Evaluation model:
//
//	env  := problem.Env{...}            // frozen once per run
//	rec  := problem.Evaluate(cfg, &env) // always yields a Record
//
// Every formula is a registered evaluator over the frozen Env (constant
// registry, prebuilt tensor, wave evaluator, sequence options). Auxiliary
// iterations that belong to single problems — the bounded halving/tripling
// walk and the bounded quadratic recurrence mod m — are formulas like any
// other.
//
// ✨ Verdict discipline:
//
//   - Passed  — |computed − target| ≤ tolerance.
//   - Failed  — the miss exceeds tolerance; misses are results, never
//     errors.
//   - Errored — a dependency raised a configuration/numeric/precision
//     failure. The failure is caught HERE, at the mapper boundary, and
//     folded into the record so the surrounding run keeps going.
//
// Evaluate never returns an error and never panics on user input: a
// malformed case produces an Errored record with the reason attached.
package problem
