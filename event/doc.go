// Package event builds the sweep-sorted event list consumed by the cell
// decomposer: one IN and one OUT event per obstacle polygon, at its
// leftmost and rightmost vertex, plus a CEILING or FLOOR event for every
// other vertex depending on which chain of the counter-clockwise polygon
// it lies on.
package event
