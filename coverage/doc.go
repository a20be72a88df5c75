// Package coverage generates the per-cell boustrophedon (back-and-forth)
// sweep path: given a cell's ceiling/floor chains, a robot radius, and a
// starting corner, it produces the ordered interior path points that
// sweep the cell's free space in vertical strips spaced by the robot's
// radius.
//
// The four starting corners are generated from a single symmetry
// argument (horizontal direction × initial vertical direction) rather
// than as four independently transliterated branches, so TOPLEFT and
// BOTTOMLEFT share their left-to-right sweep and TOPRIGHT and
// BOTTOMRIGHT share their right-to-left sweep; only the initial vertical
// direction differs within each pair.
package coverage
