package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/graphio"
)

const sampleYAML = `
directed: true
vertices: [Z]
edges:
  - {from: C, to: D, weight: 1, attrs: {length: 3}}
  - {from: C, to: E, weight: 2, attrs: {length: 2}}
  - {from: D, to: F}
`

const sampleJSON = `{
  "directed": false,
  "edges": [
    {"from": "a", "to": "b", "weight": 1.5},
    {"from": "b", "to": "c", "weight": 2, "attrs": {"toll": 4}}
  ]
}`

func TestDecode_YAML(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, []string{"C", "D", "E", "F", "Z"}, g.Vertices())
	require.Equal(t, 3, g.EdgeCount())

	e, err := g.EdgeBetween("C", "D")
	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, 1.0, e.Weight)
	assert.Equal(t, map[string]float64{"length": 3}, e.Attrs)

	e, err = g.EdgeBetween("D", "F")
	require.NoError(t, err)
	assert.Equal(t, graphio.DefaultWeight, e.Weight)
	assert.False(t, g.HasEdge("D", "C"))
}

func TestDecode_JSON(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge("c", "b"))
	e, err := g.EdgeBetween("b", "c")
	require.NoError(t, err)
	toll, err := e.WeightOf("toll")
	require.NoError(t, err)
	assert.Equal(t, 4.0, toll)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", graphio.ErrEmptyDocument},
		{"empty edge endpoint", "edges: [{from: a, to: ''}]", core.ErrEmptyVertexID},
		{"duplicate edge", "directed: true\nedges: [{from: a, to: b}, {from: a, to: b}]", core.ErrMultiEdgeNotAllowed},
		{"self loop", "edges: [{from: a, to: a}]", core.ErrLoopNotAllowed},
		{"empty vertex", "vertices: ['']\nedges: []", graphio.ErrBadVertex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := graphio.Decode(strings.NewReader("edges: [{from: a, to: b}, {from: b, to: b}]"))
	assert.ErrorIs(t, err, graphio.ErrBadEdge)

	_, err = graphio.Decode(strings.NewReader("edges: [{from: a, to: b, cost: 3}]"))
	assert.Error(t, err, "unknown field must be rejected")

	_, err = graphio.Decode(strings.NewReader("edges: [{from: a"))
	assert.Error(t, err)
}

func TestDecode_LoopsAllowed(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader("directed: true\nloops: true\nedges: [{from: a, to: a, weight: 0}]"))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "a"))
}

// edgesOf snapshots edges as comparable values.
func edgesOf(g *core.Graph) []core.Edge {
	var out []core.Edge
	for _, e := range g.Edges() {
		out = append(out, *e)
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(directed)},
			[]builder.BuilderOption{
				builder.WithSeed(9),
				builder.WithUniformWeight(0, 10),
				builder.WithAttrFn("length", builder.IntUniformWeightFn(1, 5)),
			},
			builder.RandomSparse(9, 0.4),
		)
		require.NoError(t, err)

		for name, enc := range map[string]func(*bytes.Buffer, *core.Graph) error{
			"yaml": func(b *bytes.Buffer, g *core.Graph) error { return graphio.Encode(b, g) },
			"json": func(b *bytes.Buffer, g *core.Graph) error { return graphio.EncodeJSON(b, g) },
		} {
			var buf bytes.Buffer
			require.NoError(t, enc(&buf, g), name)

			back, err := graphio.Decode(&buf)
			require.NoError(t, err, name)
			assert.Equal(t, g.Directed(), back.Directed(), name)
			assert.Equal(t, g.Vertices(), back.Vertices(), name)
			assert.Equal(t, edgesOf(g), edgesOf(back), name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("x", "y", 2, core.WithEdgeAttr("length", 7))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("lonely"))

	dir := t.TempDir()
	for _, name := range []string{"g.yaml", "g.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.Save(path, g))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		if filepath.Ext(name) == ".json" {
			assert.True(t, bytes.HasPrefix(raw, []byte("{")), "json output expected")
		} else {
			assert.Contains(t, string(raw), "directed: true")
		}

		back, err := graphio.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"lonely", "x", "y"}, back.Vertices())
		assert.Equal(t, edgesOf(g), edgesOf(back))
	}

	_, err = graphio.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
