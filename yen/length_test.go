package yen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/yen"
)

func TestPathLength(t *testing.T) {
	g := buildSample(t)

	tests := []struct {
		name string
		path []string
		key  string
		want float64
	}{
		{"single vertex", []string{"C"}, "", 0},
		{"default key", []string{"C", "D", "F", "H"}, "", 12},
		{"explicit weight key", []string{"C", "D", "F", "H"}, core.DefaultWeightKey, 12},
		{"length key", []string{"C", "E", "F", "H"}, "length", 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := yen.PathLength(g, tc.path, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPathLength_Errors(t *testing.T) {
	g := buildSample(t)

	_, err := yen.PathLength(nil, []string{"C"}, "")
	assert.ErrorIs(t, err, yen.ErrNilGraph)

	_, err = yen.PathLength(g, nil, "")
	assert.ErrorIs(t, err, yen.ErrEmptyPath)

	// Edges are directed: H→F does not exist.
	_, err = yen.PathLength(g, []string{"C", "D", "F", "H", "F"}, "")
	assert.ErrorIs(t, err, yen.ErrMissingEdge)

	_, err = yen.PathLength(g, []string{"C", "D"}, "toll")
	assert.ErrorIs(t, err, core.ErrAttrNotFound)
}

func TestPathLength_WrongSnapshot(t *testing.T) {
	g := buildSample(t)
	work := core.WithoutVertices(g, "D")

	_, err := yen.PathLength(work, []string{"C", "D", "F", "H"}, "")
	assert.ErrorIs(t, err, yen.ErrMissingEdge)
}
