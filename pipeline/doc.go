// Package pipeline orchestrates one verification run end to end:
// compute-once environment construction, concurrent problem evaluation, and
// deterministic report assembly.
//
// 🚀 What does it provide?
//
//	opts := pipeline.DefaultOptions()
//	rep, err := pipeline.Run(ctx, problemset.Default(), &opts)
//	data, _ := rep.Encode()
//
// ✨ Guarantees:
//
//   - Compute once, then freeze: the constant registry, the run tensor and
//     the wave evaluator are built exactly once and shared read-only by
//     every problem evaluation.
//   - Deterministic output: records are re-sorted by problem id before
//     assembly, never left in completion order, so concurrent runs of the
//     same table encode to identical bytes.
//   - Fault isolation: only registry construction failure aborts a run;
//     every other failure is confined to its problem's Errored record.
//   - Cancellable: context cancellation stops evaluation between problems.
//
// Logging is optional zap; the default is a no-op logger and every leaf
// package below the pipeline stays silent.
package pipeline
