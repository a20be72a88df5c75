// File: planner/example_test.go
package planner_test

import (
	"fmt"

	"github.com/covplan/bcd/geom"
	"github.com/covplan/bcd/planner"
)

// ExamplePlan demonstrates planning a complete-coverage trajectory for a
// single diamond-shaped obstacle in an otherwise empty workspace.
func ExamplePlan() {
	diamond := geom.Polygon{
		{X: 200, Y: 300},
		{X: 300, Y: 200},
		{X: 200, Y: 100},
		{X: 100, Y: 200},
	}

	cfg := planner.NewConfig(400, 400, geom.Point{X: 150, Y: 100}, 1, 5)
	result, err := planner.Plan(cfg, []geom.Polygon{diamond})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cells:", len(result.Graph.Cells))
	fmt.Println("start point:", result.Trajectory[0])

	// Output:
	// cells: 4
	// start point: {150 100}
}
