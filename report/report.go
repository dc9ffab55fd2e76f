// SPDX-License-Identifier: MIT
// Package report: record and report types plus assembly.

package report

import (
	"encoding/json"
	"fmt"

	"github.com/jtrag/phiverify"
)

// Verdict classifies one evaluated problem.
type Verdict string

const (
	// Passed: |computed − target| ≤ tolerance.
	Passed Verdict = "passed"
	// Failed: the difference exceeds tolerance. A miss is a result, not an
	// error — nothing in the engine ever throws for it.
	Failed Verdict = "failed"
	// Errored: a dependency computation raised a recoverable
	// configuration/numeric/precision failure.
	Errored Verdict = "error"
)

// Record is the terminal result of one problem evaluation. Immutable once
// produced.
type Record struct {
	ProblemID string  `json:"problem_id" yaml:"problem_id"`
	Computed  float64 `json:"computed" yaml:"computed"`
	Target    float64 `json:"target" yaml:"target"`
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
	Verdict   Verdict `json:"verdict" yaml:"verdict"`
	// Reason carries the failure class and detail for Errored records;
	// empty otherwise.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Summary holds the verdict counts of a report.
type Summary struct {
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
	Errors int `json:"errors" yaml:"errors"`
	Total  int `json:"total" yaml:"total"`
}

// Report is the assembled run result: records in their given order plus
// summary counts. Immutable after Assemble.
type Report struct {
	Records []Record `json:"records" yaml:"records"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// ErrEmptyReport is returned by Assemble when no records were produced; a
// run over zero problems is a configuration mistake, not an empty success.
var ErrEmptyReport = fmt.Errorf("report: no records to assemble: %w", phiverify.ErrConfiguration)

// Assemble reduces records into a Report. Pure: the input order is
// preserved (callers establish ordering by problem id before assembly, not
// by completion order) and the records are copied so later caller mutation
// cannot reach the report.
func Assemble(records []Record) (*Report, error) {
	if len(records) == 0 {
		return nil, ErrEmptyReport
	}

	out := &Report{Records: make([]Record, len(records))}
	copy(out.Records, records)
	for _, r := range out.Records {
		switch r.Verdict {
		case Passed:
			out.Summary.Passed++
		case Failed:
			out.Summary.Failed++
		default:
			out.Summary.Errors++
		}
	}
	out.Summary.Total = len(out.Records)
	return out, nil
}

// Encode renders the canonical serialized form: indented JSON, field order
// fixed by the struct, no volatile fields — identical runs yield identical
// bytes.
func (r *Report) Encode() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Decode parses a serialized report back into memory.
func Decode(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("report: decode: %w", err)
	}
	return &r, nil
}
