// File: cellgraph/example_test.go
package cellgraph_test

import (
	"fmt"

	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/geom"
)

// ExampleDecompose demonstrates decomposing a 400x400 workspace around a
// single diamond-shaped obstacle into monotone cells.
func ExampleDecompose() {
	diamond := geom.Polygon{
		{X: 200, Y: 300},
		{X: 300, Y: 200},
		{X: 200, Y: 100},
		{X: 100, Y: 200},
	}

	g, err := cellgraph.Decompose(400, 400, []geom.Polygon{diamond})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cells:", len(g.Cells))

	// Output:
	// cells: 4
}
