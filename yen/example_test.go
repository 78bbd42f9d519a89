// Package yen_test provides examples demonstrating k-shortest-path queries.
package yen_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/yen"
)

// ExampleKShortestPaths lists the three cheapest C→H routes.
func ExampleKShortestPaths() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"C", "D", 1}, {"C", "E", 2}, {"D", "F", 3},
		{"E", "D", 4}, {"E", "F", 5}, {"E", "G", 6},
		{"F", "G", 7}, {"F", "H", 8}, {"G", "H", 9},
	} {
		_, _ = g.AddEdge(e.u, e.v, e.w)
	}

	res, err := yen.KShortestPaths(g, "C", "H", 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := range res.Paths {
		fmt.Println(res.Weights[i], res.Paths[i])
	}
	// Output:
	// 12 [C D F H]
	// 15 [C E F H]
	// 17 [C E G H]
}

// ExampleKShortestPaths_weightKey ranks routes by a secondary attribute and
// shows that fewer than k paths come back when the graph runs out.
func ExampleKShortestPaths_weightKey() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("depot", "north", 4, core.WithEdgeAttr("minutes", 30))
	_, _ = g.AddEdge("depot", "south", 7, core.WithEdgeAttr("minutes", 10))
	_, _ = g.AddEdge("north", "port", 4, core.WithEdgeAttr("minutes", 30))
	_, _ = g.AddEdge("south", "port", 7, core.WithEdgeAttr("minutes", 10))

	res, _ := yen.KShortestPaths(g, "depot", "port", 5, yen.WithWeightKey("minutes"))
	fmt.Println(res.Len(), res.Weights, res.Paths)
	// Output: 2 [20 60] [[depot south port] [depot north port]]
}

// ExamplePathLength prices a route walked against an undirected edge.
func ExamplePathLength() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1.5)
	_, _ = g.AddEdge("b", "c", 2)

	w, _ := yen.PathLength(g, []string{"c", "b", "a"}, "")
	fmt.Println(w)
	// Output: 3.5
}
