package matcher_test

import (
	"fmt"

	"github.com/katalvlaran/ramsey/builder"
	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/matcher"
)

// ExampleEvaluate finds a red triangle hiding inside a K4 with one blue edge.
func ExampleEvaluate() {
	pattern, _ := builder.Pattern("triangle")
	board, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithEdgeColor(core.Red)}, builder.Complete(4))
	_ = board.SetEdgeColor(1, 2, core.Blue)

	color, m, ok := matcher.Evaluate(pattern, board)
	fmt.Println(ok, color, m.Edges(pattern))
	// Output:
	// true red [{1 3} {1 4} {3 4}]
}
