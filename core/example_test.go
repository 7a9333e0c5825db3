package core_test

import (
	"fmt"

	"github.com/katalvlaran/ramsey/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()

	_ = g.AddEdge(a, b, core.Neutral)
	_ = g.AddEdge(b, c, core.Neutral)
	_ = g.SetEdgeColor(a, b, core.Red)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge 2-1 exists?", g.HasEdge(b, a))
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d %s\n", e.U, e.V, e.Color)
	}

	// Output:
	// Vertices: [1 2 3]
	// Edge 2-1 exists? true
	// 1-2 red
	// 2-3 neutral
}
