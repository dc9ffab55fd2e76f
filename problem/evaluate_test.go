package problem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtrag/phiverify/constant"
	"github.com/jtrag/phiverify/problem"
	"github.com/jtrag/phiverify/report"
	"github.com/jtrag/phiverify/seq"
	"github.com/jtrag/phiverify/tensor"
	"github.com/jtrag/phiverify/wave"
)

// newEnv builds a complete frozen environment for evaluation tests.
func newEnv(t *testing.T) *problem.Env {
	t.Helper()
	reg, err := constant.New(constant.DefaultPrecision)
	require.NoError(t, err)

	f, err := tensor.LookupFormula(tensor.FormulaGoldenPhase)
	require.NoError(t, err)
	tns, err := tensor.Build(tensor.Dims{2, 2, 2, 2, 2}, f, reg)
	require.NoError(t, err)

	wopts := wave.DefaultOptions()
	wopts.Tolerance = 5e-3
	ev, err := wave.New(reg, &wopts)
	require.NoError(t, err)

	seqOpts := seq.DefaultOptions()
	seqOpts.Registry = reg
	return &problem.Env{
		Registry:   reg,
		Tensor:     tns,
		Wave:       ev,
		SeqOpts:    seqOpts,
		TensorOpts: tensor.DefaultOptions(),
	}
}

// TestEvaluate_CollatzSteps pins the halving/tripling walk from 27: exactly
// 111 steps, verified at tolerance zero.
func TestEvaluate_CollatzSteps(t *testing.T) {
	rec := problem.Evaluate(problem.Config{
		ID:        "collatz-27",
		Formula:   problem.FormulaCollatzSteps,
		Params:    map[string]float64{"start": 27},
		Target:    111,
		Tolerance: 0,
	}, newEnv(t))

	assert.Equal(t, report.Passed, rec.Verdict)
	assert.Equal(t, 111.0, rec.Computed)
	assert.Empty(t, rec.Reason)
}

// TestEvaluate_CollatzBudget verifies budget exhaustion becomes a
// precision-classed Errored record.
func TestEvaluate_CollatzBudget(t *testing.T) {
	rec := problem.Evaluate(problem.Config{
		ID:      "collatz-starved",
		Formula: problem.FormulaCollatzSteps,
		Params:  map[string]float64{"start": 27, "maxSteps": 10},
		Target:  111,
	}, newEnv(t))

	assert.Equal(t, report.Errored, rec.Verdict)
	assert.True(t, strings.HasPrefix(rec.Reason, "precision:"), "reason %q", rec.Reason)
}

// TestEvaluate_ConstantAndIdentity covers the two registry-backed formulas.
func TestEvaluate_ConstantAndIdentity(t *testing.T) {
	env := newEnv(t)

	rec := problem.Evaluate(problem.Config{
		ID:        "golden-slope",
		Formula:   problem.FormulaConstant,
		Refs:      map[string]string{"constant": constant.GoldenRatioSlopeDegrees},
		Target:    51.8273,
		Tolerance: 1e-3,
	}, env)
	assert.Equal(t, report.Passed, rec.Verdict)
	assert.InDelta(t, 51.8273, rec.Computed, 1e-3)

	rec = problem.Evaluate(problem.Config{
		ID:        "phi-identity",
		Formula:   problem.FormulaPhiIdentity,
		Target:    0,
		Tolerance: 1e-9,
	}, env)
	assert.Equal(t, report.Passed, rec.Verdict)
}

// TestEvaluate_ResiduePeriod verifies the detected Fibonacci mod-9 period
// flows through the mapper.
func TestEvaluate_ResiduePeriod(t *testing.T) {
	rec := problem.Evaluate(problem.Config{
		ID:        "pisano-9",
		Formula:   problem.FormulaResiduePeriod,
		Refs:      map[string]string{"sequence": "fibonacci"},
		Target:    24,
		Tolerance: 0,
	}, newEnv(t))

	assert.Equal(t, report.Passed, rec.Verdict)
	assert.Equal(t, 24.0, rec.Computed)
}

// TestEvaluate_RecurrenceMod pins the quadratic recurrence: from seed 2 with
// x ← x²+1 mod 7, three steps land on 5.
func TestEvaluate_RecurrenceMod(t *testing.T) {
	rec := problem.Evaluate(problem.Config{
		ID:        "quad-mod",
		Formula:   problem.FormulaRecurrenceMod,
		Params:    map[string]float64{"seed": 2, "modulus": 7, "steps": 3},
		Target:    5,
		Tolerance: 0,
	}, newEnv(t))

	assert.Equal(t, report.Passed, rec.Verdict)
	assert.Equal(t, 5.0, rec.Computed)
}

// TestEvaluate_TensorFormulas covers entropy and its normalized ratio.
func TestEvaluate_TensorFormulas(t *testing.T) {
	env := newEnv(t)

	rec := problem.Evaluate(problem.Config{
		ID:        "entropy-ratio",
		Formula:   problem.FormulaEntropyRatio,
		Target:    0.5,
		Tolerance: 0.5, // anywhere in [0, 1]
	}, env)
	assert.Equal(t, report.Passed, rec.Verdict, "reason: %s", rec.Reason)
	assert.GreaterOrEqual(t, rec.Computed, 0.0)
	assert.LessOrEqual(t, rec.Computed, 1.0)

	// The same formula without a tensor must error, not panic.
	env.Tensor = nil
	rec = problem.Evaluate(problem.Config{
		ID:      "entropy-no-tensor",
		Formula: problem.FormulaTensorEntropy,
		Target:  1,
	}, env)
	assert.Equal(t, report.Errored, rec.Verdict)
	assert.True(t, strings.HasPrefix(rec.Reason, "configuration:"), "reason %q", rec.Reason)
}

// TestEvaluate_WaveFormulas covers the residual and null-count formulas.
func TestEvaluate_WaveFormulas(t *testing.T) {
	env := newEnv(t)

	rec := problem.Evaluate(problem.Config{
		ID:        "wave-origin",
		Formula:   problem.FormulaWaveResidual,
		Params:    map[string]float64{"x": 0},
		Target:    1,
		Tolerance: 1e-12,
	}, env)
	assert.Equal(t, report.Passed, rec.Verdict, "ψ(0) = 1 exactly")

	rec = problem.Evaluate(problem.Config{
		ID:        "wave-nulls",
		Formula:   problem.FormulaWaveNullCount,
		Params:    map[string]float64{"from": -10, "to": 10},
		Target:    0,
		Tolerance: 0,
	}, env)
	assert.Equal(t, report.Failed, rec.Verdict, "ψ has nulls on [-10,10] at the test tolerance")
	assert.Positive(t, rec.Computed)
}

// TestEvaluate_MalformedCases verifies every malformation becomes an
// Errored record with a configuration-classed reason.
func TestEvaluate_MalformedCases(t *testing.T) {
	env := newEnv(t)
	cases := []problem.Config{
		{ID: "", Formula: problem.FormulaPhiIdentity},
		{ID: "bad-tolerance", Formula: problem.FormulaPhiIdentity, Tolerance: -1},
		{ID: "no-such-formula", Formula: "riemannZetaClosedForm", Target: 1},
		{ID: "missing-ref", Formula: problem.FormulaConstant, Target: 1},
		{ID: "bad-ref", Formula: problem.FormulaConstant, Refs: map[string]string{"constant": "theAether"}, Target: 1},
		{ID: "missing-param", Formula: problem.FormulaCollatzSteps, Target: 1},
		{ID: "bad-kind", Formula: problem.FormulaResiduePeriod, Refs: map[string]string{"sequence": "tribonacci"}, Target: 1},
	}
	for _, cfg := range cases {
		rec := problem.Evaluate(cfg, env)
		assert.Equal(t, report.Errored, rec.Verdict, "config %q", cfg.ID)
		assert.True(t, strings.HasPrefix(rec.Reason, "configuration:"), "config %q: reason %q", cfg.ID, rec.Reason)
	}
}

// TestEvaluate_FailedIsNotError verifies a tolerance miss stays a result.
func TestEvaluate_FailedIsNotError(t *testing.T) {
	rec := problem.Evaluate(problem.Config{
		ID:        "phi-wrong-target",
		Formula:   problem.FormulaConstant,
		Refs:      map[string]string{"constant": constant.Phi},
		Target:    3,
		Tolerance: 1e-6,
	}, newEnv(t))

	assert.Equal(t, report.Failed, rec.Verdict)
	assert.Empty(t, rec.Reason, "a miss carries no failure reason")
	assert.InDelta(t, 1.618, rec.Computed, 1e-3, "the computed value is still reported")
}

// TestRegisterFormula verifies extension without touching the engine.
func TestRegisterFormula(t *testing.T) {
	require.NoError(t, problem.RegisterFormula("answerOfEverything",
		func(problem.Config, *problem.Env) (float64, error) { return 42, nil }))
	assert.Contains(t, problem.FormulaNames(), "answerOfEverything")

	rec := problem.Evaluate(problem.Config{
		ID:      "custom",
		Formula: "answerOfEverything",
		Target:  42,
	}, newEnv(t))
	assert.Equal(t, report.Passed, rec.Verdict)
}
