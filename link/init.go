package link

import (
	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/geom"
)

// PathInitialization builds the path from the user's start point into
// the starting cell's top-left safe corner: descend vertically from
// start to the ceiling-inset row at start's column, then walk leftward
// along the ceiling inset.
func PathInitialization(start geom.Point, cell *cellgraph.Cell, r int) []geom.Point {
	indexOffset := start.X - cell.Ceiling[0].X
	if indexOffset < 0 {
		indexOffset = -indexOffset
	}
	if n := len(cell.Ceiling); indexOffset >= n {
		indexOffset = n - 1
	}

	var path []geom.Point
	for y := start.Y; y >= cell.Ceiling[indexOffset].Y+(r+1); y-- {
		path = append(path, geom.Point{X: start.X, Y: y})
	}
	for i := indexOffset; i >= r+1; i-- {
		path = append(path, geom.Point{X: cell.Ceiling[i].X, Y: cell.Ceiling[i].Y + (r + 1)})
	}

	return path
}
