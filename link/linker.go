package link

import (
	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/geom"
)

// FindLinkingPath builds the polyline connecting currExit (in currCell)
// to nextEntrance (in nextCell): first walking currCell's inset wall to
// whichever of its corners is nearest nextEntrance, then transferring
// straight across to nextEntrance. The transfer loops stop one step
// short, so nextEntrance is appended explicitly and the path always
// ends exactly there.
func FindLinkingPath(currExit, nextEntrance geom.Point, currCell, nextCell *cellgraph.Cell, r int) ([]geom.Point, error) {
	exit, exitCorner, err := FindNextEntrance(nextEntrance, currCell, r)
	if err != nil {
		return nil, err
	}

	wallPath, err := ExitAlongWall(currExit, exit, exitCorner, currCell, r)
	if err != nil {
		return nil, err
	}

	incrementX := geom.Sign(nextEntrance.X - exit.X)
	incrementY := geom.Sign(nextEntrance.Y - exit.Y)

	lo, hi := r+1, len(currCell.Ceiling)-1-(r+1)

	var upperBound, lowerBound int
	bandFound := false
	if exit.X >= currCell.Ceiling[hi].X {
		upperBound = currCell.Ceiling[hi].Y
		lowerBound = currCell.Floor[hi].Y
		bandFound = true
	}
	if exit.X <= currCell.Ceiling[lo].X {
		upperBound = currCell.Ceiling[lo].Y
		lowerBound = currCell.Floor[lo].Y
		bandFound = true
	}
	if !bandFound {
		return nil, ErrAmbiguousTransferRegion
	}

	path := make([]geom.Point, 0, len(wallPath)+8)
	path = append(path, wallPath...)

	if nextEntrance.Y >= upperBound && nextEntrance.Y <= lowerBound {
		for y := exit.Y; y != nextEntrance.Y; y += incrementY {
			path = append(path, geom.Point{X: exit.X, Y: y})
		}
		for x := exit.X; x != nextEntrance.X; x += incrementX {
			path = append(path, geom.Point{X: x, Y: nextEntrance.Y})
		}
	} else {
		for x := exit.X; x != nextEntrance.X; x += incrementX {
			path = append(path, geom.Point{X: x, Y: exit.Y})
		}
		for y := exit.Y; y != nextEntrance.Y; y += incrementY {
			path = append(path, geom.Point{X: nextEntrance.X, Y: y})
		}
	}
	path = append(path, nextEntrance)

	return path, nil
}

// StraightTransfer builds a vertical-then-horizontal polyline from exit
// to entrance with no wall-following prefix. It is the fallback used
// when the current cell is too narrow to have safe corners at all:
// there is no wall to walk, so the planner transfers directly.
func StraightTransfer(exit, entrance geom.Point) []geom.Point {
	incrementX := geom.Sign(entrance.X - exit.X)
	incrementY := geom.Sign(entrance.Y - exit.Y)

	path := make([]geom.Point, 0)
	for y := exit.Y; y != entrance.Y; y += incrementY {
		path = append(path, geom.Point{X: exit.X, Y: y})
	}
	for x := exit.X; x != entrance.X; x += incrementX {
		path = append(path, geom.Point{X: x, Y: entrance.Y})
	}
	path = append(path, entrance)

	return path
}
