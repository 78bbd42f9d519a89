package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kpaths/core"
)

// sampleEdges is the directed C..H network with two cost metrics.
var sampleEdges = []struct {
	from, to       string
	weight, length float64
}{
	{"C", "D", 1, 3}, {"C", "E", 2, 2}, {"D", "F", 3, 4},
	{"E", "D", 4, 1}, {"E", "F", 5, 2}, {"E", "G", 6, 3},
	{"F", "G", 7, 2}, {"F", "H", 8, 1}, {"G", "H", 9, 2},
}

// sampleGraph builds the demo network.
func sampleGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range sampleEdges {
		if _, err := g.AddEdge(e.from, e.to, e.weight, core.WithEdgeAttr("length", e.length)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func newDemoCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the search on a built-in sample network C..H",
		Long: `demo builds a directed network on C, D, E, F, G, H whose edges carry
both "weight" and "length" attributes, and lists the k shortest C→H paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := q.validate(); err != nil {
				return err
			}
			g, err := sampleGraph()
			if err != nil {
				return err
			}

			return a.search(cmd, g, &q)
		},
	}
	q.register(cmd, "C", "H")

	return cmd
}
