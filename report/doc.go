// Package report aggregates per-problem verification records into one
// immutable, serializable report. No computation happens here: Assemble is
// a pure reduction that preserves record order and counts verdicts.
//
// A Record is the terminal form of one problem evaluation — computed value,
// target, tolerance and verdict — and a Report is the ordered record list
// plus summary counts. Reports contain no timestamps or run identifiers, so
// two runs over identical configuration serialize byte-identically.
//
// The JSON form is the hand-off surface for external presentation layers
// (markdown/text renderers live outside this module).
package report
