package link

import (
	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/coverage"
	"github.com/covplan/bcd/geom"
)

// FindNextEntrance returns the corner of cell nearest to from, by
// squared Euclidean distance. It doubles as the "exit corner" lookup
// when cell is the current cell and from is the next cell's entrance,
// and as the literal next-cell-entrance lookup when cell is the next
// cell.
func FindNextEntrance(from geom.Point, cell *cellgraph.Cell, r int) (geom.Point, coverage.Corner, error) {
	corners, degenerate := coverage.CornerPoints(cell, r)
	if degenerate {
		// No safe corner exists to aim for; fall back to the cell's
		// representative point so the linker still connects entrance
		// and exit instead of failing outright.
		return coverage.FallbackPoint(cell), coverage.TopLeft, nil
	}

	best := corners[0]
	bestCorner := coverage.Corner(0)
	bestDist := from.SquaredDistance(best)

	for i := 1; i < len(corners); i++ {
		d := from.SquaredDistance(corners[i])
		if d < bestDist {
			bestDist = d
			best = corners[i]
			bestCorner = coverage.Corner(i)
		}
	}

	return best, bestCorner, nil
}
