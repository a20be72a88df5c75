package link

import (
	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/coverage"
	"github.com/covplan/bcd/geom"
)

// wallSides holds the four inset boundary sequences of a cell, each
// walked top-to-bottom or left-to-right, used by ExitAlongWall to
// assemble a wall-following polyline between two corners.
type wallSides struct {
	left, bottom, right, top []geom.Point
}

func buildWallSides(cell *cellgraph.Cell, r int, corners [4]geom.Point) wallSides {
	var w wallSides

	for y := corners[coverage.TopLeft].Y; y < corners[coverage.BottomLeft].Y; y++ {
		w.left = append(w.left, geom.Point{X: corners[coverage.TopLeft].X, Y: y})
	}

	lo, hi := r+1, len(cell.Ceiling)-1-(r+1)
	for i := lo; i <= hi; i++ {
		w.top = append(w.top, geom.Point{X: cell.Ceiling[i].X, Y: cell.Ceiling[i].Y + (r + 1)})
		w.bottom = append(w.bottom, geom.Point{X: cell.Floor[i].X, Y: cell.Floor[i].Y - (r + 1)})
	}

	for y := corners[coverage.TopRight].Y; y < corners[coverage.BottomRight].Y; y++ {
		w.right = append(w.right, geom.Point{X: corners[coverage.TopRight].X, Y: y})
	}

	return w
}

func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(out)-1-i] = p
	}
	return out
}

// ExitAlongWall walks cell's inset wall from start to end, where end is
// identified by endCorner. Each of the twelve start/end corner pairs
// concatenates a fixed sequence of wall sides, clockwise or
// counter-clockwise as needed. If start and end are the same corner, it
// returns an empty path.
func ExitAlongWall(start, end geom.Point, endCorner coverage.Corner, cell *cellgraph.Cell, r int) ([]geom.Point, error) {
	corners, degenerate := coverage.CornerPoints(cell, r)
	if degenerate {
		return nil, ErrDegenerateCell
	}

	startCorner := -1
	for i, c := range corners {
		if c.Equal(start) {
			startCorner = i
			break
		}
	}
	if startCorner < 0 {
		return nil, ErrCornerNotFound
	}

	if coverage.Corner(startCorner) == endCorner {
		return nil, nil
	}

	w := buildWallSides(cell, r, corners)

	switch {
	case startCorner == int(coverage.TopLeft) && endCorner == coverage.TopRight:
		return w.top, nil
	case startCorner == int(coverage.TopLeft) && endCorner == coverage.BottomLeft:
		return w.left, nil
	case startCorner == int(coverage.TopLeft) && endCorner == coverage.BottomRight:
		return append(append([]geom.Point{}, w.left...), w.bottom...), nil

	case startCorner == int(coverage.TopRight) && endCorner == coverage.TopLeft:
		return reversed(w.top), nil
	case startCorner == int(coverage.TopRight) && endCorner == coverage.BottomLeft:
		return append(reversed(w.top), w.left...), nil
	case startCorner == int(coverage.TopRight) && endCorner == coverage.BottomRight:
		return w.right, nil

	case startCorner == int(coverage.BottomLeft) && endCorner == coverage.TopLeft:
		return reversed(w.left), nil
	case startCorner == int(coverage.BottomLeft) && endCorner == coverage.TopRight:
		return append(append([]geom.Point{}, w.bottom...), reversed(w.right)...), nil
	case startCorner == int(coverage.BottomLeft) && endCorner == coverage.BottomRight:
		return w.bottom, nil

	case startCorner == int(coverage.BottomRight) && endCorner == coverage.TopLeft:
		return append(reversed(w.right), reversed(w.top)...), nil
	case startCorner == int(coverage.BottomRight) && endCorner == coverage.TopRight:
		return reversed(w.right), nil
	case startCorner == int(coverage.BottomRight) && endCorner == coverage.BottomLeft:
		return reversed(w.bottom), nil
	}

	return nil, ErrCornerNotFound
}
