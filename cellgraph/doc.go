// Package cellgraph builds the cell adjacency graph from a sweep-sorted
// event list: an arena of Cells indexed by integer, linked by ordered
// neighbor-index lists rather than pointers, so the graph can hold cycles
// without any owning back-reference.
//
// The decomposer (Decompose) is a sweep-line event processor: it
// maintains the active-cell slice across slices of the sweep, opening
// two children at every IN event, merging two cells into one at every
// OUT event, and extending ceiling/floor chains at every CEILING/FLOOR
// event. Neighbor-list push order (front vs back) is
// load-bearing: it is what makes the DFS visitor in package visit walk
// newest children first.
package cellgraph
