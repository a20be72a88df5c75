package geom

// Trace expands a polygon given by its corner vertices into the
// per-column contour the sweep-line decomposition consumes: every edge
// is sampled at one point per x column, walking the vertex sequence in
// order, so each column an obstacle occupies contributes exactly one
// upper-chain and one lower-chain point. A vertical edge contributes
// only its starting vertex, keeping each chain's x sequence strictly
// monotone.
//
// A polygon whose vertices are already column-adjacent passes through
// unchanged, so tracing an already-traced contour is a no-op.
func (poly Polygon) Trace() Polygon {
	if len(poly) < 3 {
		return append(Polygon(nil), poly...)
	}

	out := make(Polygon, 0, len(poly))
	for i := range poly {
		out = append(out, edgeColumns(poly[i], poly[(i+1)%len(poly)])...)
	}

	return out
}

// edgeColumns samples the directed edge a->b at one point per x column,
// including a and excluding b.
func edgeColumns(a, b Point) []Point {
	span := b.X - a.X
	if span == 0 {
		return []Point{a}
	}

	step := Sign(span)
	n := span * step

	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, Point{
			X: a.X + i*step,
			Y: a.Y + roundDiv((b.Y-a.Y)*i, n),
		})
	}

	return pts
}

// roundDiv divides num by den (den > 0), rounding half away from zero.
func roundDiv(num, den int) int {
	if num >= 0 {
		return (num + den/2) / den
	}
	return -((-num + den/2) / den)
}
