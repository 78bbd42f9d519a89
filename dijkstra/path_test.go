package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dijkstra"
)

func TestShortestPath_Sample(t *testing.T) {
	g := buildSample(t)

	d, path, err := dijkstra.ShortestPath(g, "C", "H")
	require.NoError(t, err)
	assert.Equal(t, 12.0, d)
	assert.Equal(t, []string{"C", "D", "F", "H"}, path)

	d, path, err = dijkstra.ShortestPath(g, "C", "H", dijkstra.WithWeightKey("length"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)
	assert.Equal(t, []string{"C", "E", "F", "H"}, path)
}

func TestShortestPath_SameVertex(t *testing.T) {
	d, path, err := dijkstra.ShortestPath(buildSample(t), "D", "D")
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	assert.Equal(t, []string{"D"}, path)
}

func TestShortestPath_Unreachable(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(buildSample(t), "H", "C")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestShortestPath_UnreachableBeyondMaxDistance(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(buildSample(t), "C", "H", dijkstra.WithMaxDistance(10))
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestShortestPath_MissingVertices(t *testing.T) {
	g := buildSample(t)

	_, _, err := dijkstra.ShortestPath(g, "C", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(g, "Z", "C")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(g, "C", "")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(g, "", "C")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestShortestPath_DoesNotMutateGraph(t *testing.T) {
	g := buildSample(t)
	var before []core.Edge
	for _, e := range g.Edges() {
		before = append(before, *e)
	}

	_, _, err := dijkstra.ShortestPath(g, "C", "H")
	require.NoError(t, err)

	after := g.Edges()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i], *after[i])
	}
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "H"}, g.Vertices())
}

func TestShortestPath_UndirectedGrid(t *testing.T) {
	// 0—1—2
	// |   |
	// 3———4   (3—4 weight 2)
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 1)
	_, _ = g.AddEdge("1", "2", 1)
	_, _ = g.AddEdge("0", "3", 1)
	_, _ = g.AddEdge("2", "4", 1)
	_, _ = g.AddEdge("3", "4", 2)

	d, path, err := dijkstra.ShortestPath(g, "4", "0")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
	// Both routes cost 3; 3 is settled before 1 (equal distance, pushed
	// earlier), so 0 is first reached through 3.
	assert.Equal(t, []string{"4", "3", "0"}, path)
}
