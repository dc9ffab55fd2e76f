// SPDX-License-Identifier: MIT
// Package pipeline: run orchestration.

package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/constant"
	"github.com/jtrag/phiverify/problem"
	"github.com/jtrag/phiverify/report"
	"github.com/jtrag/phiverify/seq"
	"github.com/jtrag/phiverify/tensor"
	"github.com/jtrag/phiverify/wave"
)

// Defaults (single source of truth).
const (
	// DefaultTensorFormula names the cell formula the run tensor is built
	// from.
	DefaultTensorFormula = tensor.FormulaGoldenPhase
)

// DefaultTensorDims is the run tensor shape: 3⁵ = 243 cells.
var DefaultTensorDims = tensor.Dims{3, 3, 3, 3, 3}

var (
	// ErrNoProblems is returned by Run for an empty problem table.
	ErrNoProblems = fmt.Errorf("pipeline: no problems to run: %w", phiverify.ErrConfiguration)

	// ErrRegistry is returned by Run when the constant registry cannot be
	// built; nothing downstream can compute without it.
	ErrRegistry = fmt.Errorf("pipeline: registry construction failed: %w", phiverify.ErrConfiguration)
)

// Options configures one run.
//
// Fields:
//   - Precision     — registry digits; 0 for constant.DefaultPrecision.
//   - Workers       — concurrent evaluations; 0 for GOMAXPROCS.
//   - TensorFormula — registered cell formula for the run tensor.
//   - TensorDims    — run tensor shape.
//   - Wave          — wave evaluator policy.
//   - Tensor        — derived-statistic policy.
//   - Seq           — sequence generation policy (Registry is set by Run).
//   - Logger        — optional; nil means zap.NewNop().
type Options struct {
	Precision     int
	Workers       int
	TensorFormula string
	TensorDims    tensor.Dims
	Wave          wave.Options
	Tensor        tensor.Options
	Seq           seq.Options
	Logger        *zap.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Precision:     constant.DefaultPrecision,
		Workers:       runtime.GOMAXPROCS(0),
		TensorFormula: DefaultTensorFormula,
		TensorDims:    DefaultTensorDims,
		Wave:          wave.DefaultOptions(),
		Tensor:        tensor.DefaultOptions(),
		Seq:           seq.DefaultOptions(),
	}
}

// Run executes the whole verification pipeline over cfgs.
//
// Stage 1 (Validate): non-empty table, normalized options.
// Stage 2 (Build): registry, run tensor and wave evaluator, computed once.
// Stage 3 (Evaluate): bounded concurrent evaluation; each problem yields a
// record regardless of its outcome.
// Stage 4 (Finalize): records sorted by problem id, then assembled.
//
// Only registry construction failure (or context cancellation) aborts the
// run; tensor and wave construction failures degrade the environment and
// surface per problem as Errored records.
func Run(ctx context.Context, cfgs []problem.Config, opts *Options) (*report.Report, error) {
	if len(cfgs) == 0 {
		return nil, ErrNoProblems
	}
	o := normalized(opts)
	log := o.Logger

	env, err := buildEnv(&o, log)
	if err != nil {
		return nil, err
	}

	records := make([]report.Record, len(cfgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, cfg := range cfgs {
		i, cfg := i, cfg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = evaluateOne(cfg, env, &o)
			log.Info("problem evaluated",
				zap.String("id", records[i].ProblemID),
				zap.String("verdict", string(records[i].Verdict)),
				zap.Float64("computed", records[i].Computed))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline: run cancelled: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ProblemID < records[j].ProblemID
	})
	return report.Assemble(records)
}

// normalized applies defaults to nil or partially zero Options.
func normalized(opts *Options) Options {
	o := DefaultOptions()
	if opts == nil {
		return o
	}
	o = *opts
	if o.Precision <= 0 {
		o.Precision = constant.DefaultPrecision
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.TensorFormula == "" {
		o.TensorFormula = DefaultTensorFormula
	}
	if o.TensorDims == (tensor.Dims{}) {
		o.TensorDims = DefaultTensorDims
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// buildEnv computes the frozen environment. The registry is mandatory; a
// tensor or wave failure leaves the corresponding field nil and is logged,
// so only the problems needing it fail.
func buildEnv(o *Options, log *zap.Logger) (*problem.Env, error) {
	reg, err := constant.New(o.Precision)
	if err != nil {
		return nil, fmt.Errorf("buildEnv(precision %d): %v: %w", o.Precision, err, ErrRegistry)
	}

	env := &problem.Env{
		Registry:   reg,
		SeqOpts:    o.Seq,
		TensorOpts: o.Tensor,
	}
	env.SeqOpts.Registry = reg

	if f, err := tensor.LookupFormula(o.TensorFormula); err != nil {
		log.Warn("run tensor skipped", zap.String("formula", o.TensorFormula), zap.Error(err))
	} else if tns, err := tensor.Build(o.TensorDims, f, reg); err != nil {
		log.Warn("run tensor skipped", zap.String("formula", o.TensorFormula), zap.Error(err))
	} else {
		env.Tensor = tns
	}

	if ev, err := wave.New(reg, &o.Wave); err != nil {
		log.Warn("wave evaluator skipped", zap.Error(err))
	} else {
		env.Wave = ev
	}
	return env, nil
}

// evaluateOne runs a single problem, honoring a per-case precision override
// by rebuilding only the registry; the tensor and wave snapshots stay at the
// run precision.
func evaluateOne(cfg problem.Config, env *problem.Env, o *Options) report.Record {
	if cfg.Precision > 0 && cfg.Precision != o.Precision {
		reg, err := constant.New(cfg.Precision)
		if err != nil {
			return report.Record{
				ProblemID: cfg.ID,
				Target:    cfg.Target,
				Tolerance: cfg.Tolerance,
				Verdict:   report.Errored,
				Reason:    "configuration: " + err.Error(),
			}
		}
		local := *env
		local.Registry = reg
		local.SeqOpts.Registry = reg
		return problem.Evaluate(cfg, &local)
	}
	return problem.Evaluate(cfg, env)
}
