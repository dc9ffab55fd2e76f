// SPDX-License-Identifier: MIT
// Package problem: the formula registry.
// A formula is a named, pure evaluator over (Config, Env). The six shipped
// cases reference these by name from configuration data; adding a problem
// mapping means registering a formula or reusing one, never editing the
// evaluation path.

package problem

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jtrag/phiverify/constant"
	"github.com/jtrag/phiverify/seq"
	"github.com/jtrag/phiverify/tensor"
)

// Evaluator computes one problem's value from its config and the frozen
// environment.
type Evaluator func(cfg Config, env *Env) (float64, error)

// Built-in formula names.
const (
	// FormulaConstant returns the registry constant named by refs.constant.
	FormulaConstant = "constantValue"
	// FormulaPhiIdentity returns |φ²−φ−1| at the run precision.
	FormulaPhiIdentity = "phiIdentity"
	// FormulaSequenceValue returns sequence refs.sequence at params.index.
	FormulaSequenceValue = "sequenceValue"
	// FormulaResiduePeriod returns the detected period of refs.sequence
	// modulo params.modulus (default 9).
	FormulaResiduePeriod = "residuePeriod"
	// FormulaTTTPeriod returns the detected TTT cycle period over
	// params.length samples (default 120).
	FormulaTTTPeriod = "tttPeriod"
	// FormulaHybridAttractors returns the distinct residue count of
	// (Lucas+Pell) mod params.modulus over params.length values.
	FormulaHybridAttractors = "hybridAttractors"
	// FormulaTensorEntropy returns the spectral entropy of the run tensor.
	FormulaTensorEntropy = "tensorEntropy"
	// FormulaEntropyRatio returns entropy / log(dimension) of the run
	// tensor — always strictly inside (0, 1] for a mixed spectrum.
	FormulaEntropyRatio = "entropyRatio"
	// FormulaTTTHurst returns the Hurst exponent of the TTT value series
	// over params.length samples (default 256).
	FormulaTTTHurst = "tttHurst"
	// FormulaWaveNullCount returns the detected null count of ψ on
	// [params.from, params.to].
	FormulaWaveNullCount = "waveNullCount"
	// FormulaWaveResidual returns |ψ(params.x)|.
	FormulaWaveResidual = "waveResidual"
	// FormulaZeroSetDimension returns the box-counting dimension of ψ's
	// zero set on [params.from, params.to] over params.scales scales.
	FormulaZeroSetDimension = "zeroSetDimension"
	// FormulaCollatzSteps returns the halving/tripling step count from
	// params.start down to 1, bounded by params.maxSteps.
	FormulaCollatzSteps = "collatzSteps"
	// FormulaRecurrenceMod returns the value of the bounded quadratic
	// recurrence x ← (x² + params.offset) mod params.modulus after
	// params.steps iterations from params.seed.
	FormulaRecurrenceMod = "recurrenceMod"
)

var (
	formulaMu sync.RWMutex
	formulas  = map[string]Evaluator{
		FormulaConstant:         evalConstant,
		FormulaPhiIdentity:      evalPhiIdentity,
		FormulaSequenceValue:    evalSequenceValue,
		FormulaResiduePeriod:    evalResiduePeriod,
		FormulaTTTPeriod:        evalTTTPeriod,
		FormulaHybridAttractors: evalHybridAttractors,
		FormulaTensorEntropy:    evalTensorEntropy,
		FormulaEntropyRatio:     evalEntropyRatio,
		FormulaTTTHurst:         evalTTTHurst,
		FormulaWaveNullCount:    evalWaveNullCount,
		FormulaWaveResidual:     evalWaveResidual,
		FormulaZeroSetDimension: evalZeroSetDimension,
		FormulaCollatzSteps:     evalCollatzSteps,
		FormulaRecurrenceMod:    evalRecurrenceMod,
	}
)

// RegisterFormula adds a named evaluator; re-registering overwrites.
func RegisterFormula(name string, f Evaluator) error {
	if name == "" || f == nil {
		return fmt.Errorf("RegisterFormula(%q): %w", name, ErrBadConfig)
	}
	formulaMu.Lock()
	formulas[name] = f
	formulaMu.Unlock()
	return nil
}

// LookupFormula resolves a formula name.
func LookupFormula(name string) (Evaluator, error) {
	formulaMu.RLock()
	f, ok := formulas[name]
	formulaMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("LookupFormula(%q): %w", name, ErrUnknownFormula)
	}
	return f, nil
}

// FormulaNames returns the sorted registered names.
func FormulaNames() []string {
	formulaMu.RLock()
	out := make([]string, 0, len(formulas))
	for name := range formulas {
		out = append(out, name)
	}
	formulaMu.RUnlock()
	sort.Strings(out)
	return out
}

func evalConstant(cfg Config, env *Env) (float64, error) {
	name, err := cfg.ref("constant")
	if err != nil {
		return 0, err
	}
	return env.Registry.Float64(name)
}

func evalPhiIdentity(cfg Config, env *Env) (float64, error) {
	phi, err := env.Registry.Float64(constant.Phi)
	if err != nil {
		return 0, err
	}
	r := phi*phi - phi - 1
	if r < 0 {
		r = -r
	}
	return r, nil
}

func evalSequenceValue(cfg Config, env *Env) (float64, error) {
	kindName, err := cfg.ref("sequence")
	if err != nil {
		return 0, err
	}
	kind, err := seq.ParseKind(kindName)
	if err != nil {
		return 0, err
	}
	idx, err := cfg.param("index")
	if err != nil {
		return 0, err
	}
	n := int(idx)
	s, err := seq.Generate(kind, n, n, &env.SeqOpts)
	if err != nil {
		return 0, err
	}
	return s.Float64At(n)
}

func evalResiduePeriod(cfg Config, env *Env) (float64, error) {
	kindName, err := cfg.ref("sequence")
	if err != nil {
		return 0, err
	}
	kind, err := seq.ParseKind(kindName)
	if err != nil {
		return 0, err
	}
	c, err := seq.ResiduePeriod(kind, int(cfg.paramOr("modulus", seq.DefaultModulus)), &env.SeqOpts)
	if err != nil {
		return 0, err
	}
	return float64(c.Period), nil
}

func evalTTTPeriod(cfg Config, env *Env) (float64, error) {
	c, err := seq.NewTTTCycle(int(cfg.paramOr("length", 120)), int(cfg.paramOr("claimedPeriod", 0)), &env.SeqOpts)
	if err != nil {
		return 0, err
	}
	return float64(c.DetectedPeriod), nil
}

func evalHybridAttractors(cfg Config, env *Env) (float64, error) {
	length := int(cfg.paramOr("length", 100))
	s, err := seq.Hybrid(0, length-1, int(cfg.paramOr("modulus", seq.DefaultModulus)), &env.SeqOpts)
	if err != nil {
		return 0, err
	}
	seen := make(map[int64]struct{}, 9)
	for _, v := range s.Ints {
		seen[v.Int64()] = struct{}{}
	}
	return float64(len(seen)), nil
}

func evalTensorEntropy(cfg Config, env *Env) (float64, error) {
	if env.Tensor == nil {
		return 0, fmt.Errorf("formula %q needs the run tensor: %w", cfg.Formula, ErrNilEnv)
	}
	return tensor.Entropy(env.Tensor, &env.TensorOpts)
}

func evalEntropyRatio(cfg Config, env *Env) (float64, error) {
	h, err := evalTensorEntropy(cfg, env)
	if err != nil {
		return 0, err
	}
	bound, err := tensor.EntropyBound(env.Tensor)
	if err != nil {
		return 0, err
	}
	if bound == 0 {
		return 0, fmt.Errorf("formula %q: log(dimension) is zero: %w", cfg.Formula, ErrBadConfig)
	}
	return h / bound, nil
}

func evalTTTHurst(cfg Config, env *Env) (float64, error) {
	c, err := seq.NewTTTCycle(int(cfg.paramOr("length", 256)), 0, &env.SeqOpts)
	if err != nil {
		return 0, err
	}
	series := make([]float64, len(c.Values))
	for i, v := range c.Values {
		series[i] = float64(v)
	}
	return tensor.Hurst(series, &env.TensorOpts)
}

func evalWaveNullCount(cfg Config, env *Env) (float64, error) {
	if env.Wave == nil {
		return 0, fmt.Errorf("formula %q needs the run wave evaluator: %w", cfg.Formula, ErrNilEnv)
	}
	from, err := cfg.param("from")
	if err != nil {
		return 0, err
	}
	to, err := cfg.param("to")
	if err != nil {
		return 0, err
	}
	nulls, err := env.Wave.FindNulls(from, to)
	if err != nil {
		return 0, err
	}
	return float64(len(nulls)), nil
}

func evalWaveResidual(cfg Config, env *Env) (float64, error) {
	if env.Wave == nil {
		return 0, fmt.Errorf("formula %q needs the run wave evaluator: %w", cfg.Formula, ErrNilEnv)
	}
	x, err := cfg.param("x")
	if err != nil {
		return 0, err
	}
	v := env.Wave.Evaluate(x)
	if v < 0 {
		v = -v
	}
	return v, nil
}

func evalZeroSetDimension(cfg Config, env *Env) (float64, error) {
	if env.Wave == nil {
		return 0, fmt.Errorf("formula %q needs the run wave evaluator: %w", cfg.Formula, ErrNilEnv)
	}
	from, err := cfg.param("from")
	if err != nil {
		return 0, err
	}
	to, err := cfg.param("to")
	if err != nil {
		return 0, err
	}
	return env.Wave.ZeroSetDimension(from, to, int(cfg.paramOr("scales", 8)), &env.TensorOpts)
}
