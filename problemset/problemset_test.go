package problemset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtrag/phiverify"
	"github.com/jtrag/phiverify/problem"
	"github.com/jtrag/phiverify/problemset"
)

// TestDefault_Shape verifies the built-in table: seven unique cases, every
// formula registered, every tolerance sane.
func TestDefault_Shape(t *testing.T) {
	cfgs := problemset.Default()
	require.Len(t, cfgs, 7)

	ids := make(map[string]struct{}, len(cfgs))
	for _, c := range cfgs {
		assert.NotEmpty(t, c.ID)
		_, dup := ids[c.ID]
		assert.False(t, dup, "duplicate id %q", c.ID)
		ids[c.ID] = struct{}{}

		_, err := problem.LookupFormula(c.Formula)
		assert.NoError(t, err, "case %q names formula %q", c.ID, c.Formula)
		assert.GreaterOrEqual(t, c.Tolerance, 0.0, "case %q", c.ID)
	}
	for _, id := range []string{
		"riemann", "pVsNp", "navierStokes",
		"yangMills", "hodge", "birchSwinnertonDyer", "collatz",
	} {
		assert.Contains(t, ids, id)
	}
}

// TestDefault_Independent verifies each call returns a fresh table the
// caller may mutate freely.
func TestDefault_Independent(t *testing.T) {
	a := problemset.Default()
	a[0].ID = "tampered"
	a[0].Params["x"] = 42

	b := problemset.Default()
	assert.Equal(t, "riemann", b[0].ID)
	assert.Equal(t, 0.0, b[0].Params["x"])
}

// TestParse_RoundTrip verifies Marshal∘Parse is the identity and the
// rendering is byte-stable.
func TestParse_RoundTrip(t *testing.T) {
	data, err := problemset.Marshal(problemset.Default())
	require.NoError(t, err)

	cfgs, err := problemset.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, problemset.Default(), cfgs)

	again, err := problemset.Marshal(cfgs)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

// TestParse_HandWrittenTable verifies an external YAML table decodes with
// all fields in place.
func TestParse_HandWrittenTable(t *testing.T) {
	const doc = `
problems:
  - id: fib-10
    formula: sequenceValue
    refs:
      sequence: fibonacci
    params:
      index: 10
    target: 55
    tolerance: 0
  - id: phi-gap
    formula: phiIdentity
    target: 0
    tolerance: 1e-9
    precision: 80
`
	cfgs, err := problemset.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, cfgs, 2)

	assert.Equal(t, "fib-10", cfgs[0].ID)
	assert.Equal(t, "fibonacci", cfgs[0].Refs["sequence"])
	assert.Equal(t, 10.0, cfgs[0].Params["index"])
	assert.Equal(t, 55.0, cfgs[0].Target)
	assert.Equal(t, 80, cfgs[1].Precision)
}

// TestLoad_Reader verifies the io.Reader front door.
func TestLoad_Reader(t *testing.T) {
	data, err := problemset.Marshal(problemset.Default())
	require.NoError(t, err)

	cfgs, err := problemset.Load(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Len(t, cfgs, 7)
}

// TestParse_Rejections verifies every malformation is rejected before any
// computation could run.
func TestParse_Rejections(t *testing.T) {
	cases := map[string]string{
		"not yaml":        "{problems: [",
		"empty table":     "problems: []",
		"empty id":        "problems:\n  - id: \"\"\n    formula: phiIdentity\n    target: 0",
		"duplicate id":    "problems:\n  - id: a\n    formula: phiIdentity\n    target: 0\n  - id: a\n    formula: phiIdentity\n    target: 0",
		"unknown formula": "problems:\n  - id: a\n    formula: alchemy\n    target: 0",
		"negative tol":    "problems:\n  - id: a\n    formula: phiIdentity\n    target: 0\n    tolerance: -1",
		"nan target":      "problems:\n  - id: a\n    formula: phiIdentity\n    target: .nan",
	}
	for name, doc := range cases {
		_, err := problemset.Parse([]byte(doc))
		require.ErrorIs(t, err, phiverify.ErrConfiguration, name)
	}
}
