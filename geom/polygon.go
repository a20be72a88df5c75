package geom

import "errors"

// Sentinel errors for polygon validation. Callers use errors.Is to branch;
// these are never wrapped with formatted text at definition site.
var (
	// ErrTooFewVertices indicates a polygon with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("geom: polygon must have at least 3 vertices")
	// ErrNonUniqueLeftmost indicates more than one vertex shares the
	// minimum x coordinate.
	ErrNonUniqueLeftmost = errors.New("geom: polygon has no unique leftmost vertex")
	// ErrNonUniqueRightmost indicates more than one vertex shares the
	// maximum x coordinate.
	ErrNonUniqueRightmost = errors.New("geom: polygon has no unique rightmost vertex")
	// ErrNotCounterClockwise indicates the polygon is wound clockwise
	// (or is degenerate, with zero signed area).
	ErrNotCounterClockwise = errors.New("geom: polygon is not wound counter-clockwise")
)

// Polygon is a finite ordered sequence of Points, assumed convex and
// oriented counter-clockwise, with a unique leftmost and rightmost vertex.
type Polygon []Point

// Extrema locates the indices of the strict leftmost and rightmost
// vertices under the Point order. It returns an error if the polygon is
// too short, wound clockwise, or either extremum's x is shared by
// another vertex: a vertical left or right edge gives the sweep line no
// single point to enter or leave the obstacle through, and a clockwise
// winding swaps the upper and lower chains the event classifier reads
// off the vertex order, so either polygon is rejected rather than
// decomposed into an undefined topology.
//
// Complexity: O(n).
func (poly Polygon) Extrema() (leftIdx, rightIdx int, err error) {
	if len(poly) < 3 {
		return 0, 0, ErrTooFewVertices
	}
	if poly.signedDoubleArea() >= 0 {
		return 0, 0, ErrNotCounterClockwise
	}

	leftIdx, rightIdx = 0, 0
	for i := 1; i < len(poly); i++ {
		if poly[i].Less(poly[leftIdx]) {
			leftIdx = i
		}
		if poly[rightIdx].Less(poly[i]) {
			rightIdx = i
		}
	}

	leftCount, rightCount := 0, 0
	for i := range poly {
		if poly[i].X == poly[leftIdx].X {
			leftCount++
		}
		if poly[i].X == poly[rightIdx].X {
			rightCount++
		}
	}
	if leftCount > 1 {
		return 0, 0, ErrNonUniqueLeftmost
	}
	if rightCount > 1 {
		return 0, 0, ErrNonUniqueRightmost
	}

	return leftIdx, rightIdx, nil
}

// signedDoubleArea returns twice the polygon's shoelace area. Under the
// same screen coordinate system as Contains (Y increasing downward), a
// counter-clockwise-as-drawn polygon has a strictly negative sum; zero
// means all vertices are collinear.
func (poly Polygon) signedDoubleArea() int64 {
	var sum int64
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		sum += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}

	return sum
}

// Contains reports whether p lies strictly inside the convex,
// counter-clockwise polygon poly, using the sign of the cross product of
// each edge against p.
//
// The polygon's winding is "counter-clockwise" as drawn on screen, i.e.
// in a coordinate system where Y increases downward; that
// flips the usual right-hand-rule sign relative to a Cartesian, Y-up
// reading of the same cross product, so a contained point yields a
// strictly negative cross product against every directed edge here,
// not a positive one.
//
// Complexity: O(n).
func (poly Polygon) Contains(p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		cross := int64(b.X-a.X)*int64(p.Y-a.Y) - int64(b.Y-a.Y)*int64(p.X-a.X)
		if cross >= 0 {
			return false
		}
	}

	return true
}
