package coverage

import (
	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/geom"
)

// MinSafeLength is the minimum ceiling/floor chain length a cell needs
// for robot radius r to admit any interior coverage: 2(r+1)+1, the two
// insets plus at least one sweepable column between them.
func MinSafeLength(r int) int {
	return 2*(r+1) + 1
}

// CornerPoints computes the cell's four safe corners, inset by (r+1) on
// each axis, indexed by Corner. The second return reports whether the
// cell is degenerate for r, in which case the array is zero-valued and
// unusable.
func CornerPoints(cell *cellgraph.Cell, r int) (pts [4]geom.Point, degenerate bool) {
	n := len(cell.Ceiling)
	if n < MinSafeLength(r) {
		return pts, true
	}

	lo := r + 1
	hi := n - 1 - (r + 1)

	pts[TopLeft] = geom.Point{X: cell.Ceiling[lo].X, Y: cell.Ceiling[lo].Y + (r + 1)}
	pts[BottomLeft] = geom.Point{X: cell.Floor[lo].X, Y: cell.Floor[lo].Y - (r + 1)}
	pts[BottomRight] = geom.Point{X: cell.Floor[hi].X, Y: cell.Floor[hi].Y - (r + 1)}
	pts[TopRight] = geom.Point{X: cell.Ceiling[hi].X, Y: cell.Ceiling[hi].Y + (r + 1)}

	return pts, false
}

// Generate produces the coverage path for cell starting from corner with
// robot radius r.
//
// If cell.Cleaned is already set, the cell only contributes a
// pass-through waypoint: the single corner point. Otherwise the interior
// is swept in vertical strips spaced by r, alternating direction each
// strip, with up to r fill points bridging consecutive strips along
// whichever edge the previous strip ended on.
//
// A degenerate cell (too narrow for r) yields no points and no error;
// the caller treats this as "already covered".
func Generate(cell *cellgraph.Cell, r int, corner Corner) (path []geom.Point, degenerate bool) {
	corners, degenerate := CornerPoints(cell, r)
	if degenerate {
		return nil, true
	}
	if cell.Cleaned {
		return []geom.Point{corners[corner]}, false
	}

	leftToRight := corner == TopLeft || corner == BottomLeft
	startDownward := corner == TopLeft || corner == TopRight

	return sweep(cell, r, leftToRight, startDownward), false
}

// sweep walks a cell's interior in vertical strips from left to right or
// right to left, starting the first strip downward or upward, and
// alternating thereafter. The two horizontal directions combined with
// the two initial vertical directions cover all four starting corners
// in one routine, so opposite corners are exact mirrors by
// construction.
func sweep(cell *cellgraph.Cell, r int, leftToRight, startDownward bool) []geom.Point {
	n := len(cell.Ceiling)
	lo := r + 1
	hi := n - 1 - (r + 1)

	// A zero-radius stride would never advance the strip index; a
	// radius-less robot still moves one column per strip.
	step := r
	if step == 0 {
		step = 1
	}

	dirStep := 1
	if !leftToRight {
		dirStep = -1
	}

	var pts []geom.Point
	downward := startDownward

	visit := func(i int) {
		x := cell.Ceiling[i].X
		yCeil := cell.Ceiling[i].Y + (r + 1)
		yFloor := cell.Floor[i].Y - (r + 1)

		if downward {
			for y := yCeil; y <= yFloor; y++ {
				pts = append(pts, geom.Point{X: x, Y: y})
			}
		} else {
			for y := yFloor; y >= yCeil; y-- {
				pts = append(pts, geom.Point{X: x, Y: y})
			}
		}

		for j := 1; j <= r; j++ {
			idx := i + dirStep*j
			if idx < lo || idx > hi {
				break
			}
			if downward {
				pts = append(pts, geom.Point{X: cell.Ceiling[idx].X, Y: cell.Floor[idx].Y - (r + 1)})
			} else {
				pts = append(pts, geom.Point{X: cell.Ceiling[idx].X, Y: cell.Ceiling[idx].Y + (r + 1)})
			}
		}

		downward = !downward
	}

	if leftToRight {
		for i := lo; i <= hi; i += step {
			visit(i)
		}
	} else {
		for i := hi; i >= lo; i -= step {
			visit(i)
		}
	}

	return pts
}
