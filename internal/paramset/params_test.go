package paramset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMergeKeepsFirstPositionAndLastValue(t *testing.T) {
	merged := Merge(
		Params{P("a", 1), P("b", 2), P("c", 3)},
		Params{P("d", 4), P("b", 20)},
	)
	assert.Equal(t, []string{"a", "b", "c", "d"}, merged.Keys())
	v, ok := merged.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, []string{"b"}, Shadowed(Params{P("b", 2)}, Params{P("d", 4), P("b", 20)}))
}

func TestFormatValue(t *testing.T) {
	cases := map[string]any{
		"500":   500,
		"0.1":   0.10,
		"0.25":  0.25,
		"1.0":   1.0,
		"true":  true,
		"BFS":   "BFS",
		"12345": int64(12345),
	}
	for want, in := range cases {
		assert.Equal(t, want, FormatValue(in), "value %v", in)
	}
}

func TestParamsYAMLKeepsDefinitionOrder(t *testing.T) {
	src := `
zeta: 1
alpha: 0.5
maxDistance: 3
type: BFS
cache: true
`
	var ps Params
	require.NoError(t, yaml.Unmarshal([]byte(src), &ps))
	assert.Equal(t, []string{"zeta", "alpha", "maxDistance", "type", "cache"}, ps.Keys())
	assert.Equal(t, Params{P("zeta", 1), P("alpha", 0.5), P("maxDistance", 3), P("type", "BFS"), P("cache", true)}, ps)

	out, err := yaml.Marshal(ps)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "zeta: 1\nalpha: 0.5\n"), string(out))
}

func TestParamsYAMLRejectsNonScalar(t *testing.T) {
	var ps Params
	err := yaml.Unmarshal([]byte("a: [1, 2]\n"), &ps)
	require.Error(t, err)

	err = yaml.Unmarshal([]byte("- a\n"), &ps)
	require.Error(t, err)

	err = yaml.Unmarshal([]byte("a: ~\n"), &ps)
	require.Error(t, err)
}

func TestParseAppliesLastValueWins(t *testing.T) {
	src := "outPrefix ecoli\n" +
		"population = 106\n" +
		"generations : 10000\n" +
		"crossover\t0.23\n" +
		"  indented 1\n" +
		"lonely\n" +
		"\n" +
		"population 200\n"
	ps, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, Params{
		P("outPrefix", "ecoli"),
		P("population", "200"),
		P("generations", "10000"),
		P("crossover", "0.23"),
	}, ps)
}

func TestParseReadsGeneratedFile(t *testing.T) {
	b := smallBatch()
	b.Sets = []Params{{P("runs", 9)}}
	f := b.Files()[0]

	ps, err := Parse(strings.NewReader(string(f.Bytes())))
	require.NoError(t, err)
	v, ok := ps.Get("runs")
	require.True(t, ok)
	assert.Equal(t, "9", v)
	assert.Equal(t, []string{"outPrefix", "source", "generations", "runs"}, ps.Keys())
}
