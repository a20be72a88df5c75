// Package bcd is a complete-coverage path planner for a disk-shaped
// robot in a bounded rectangular workspace with convex polygonal
// obstacles.
//
// 🧭 What is bcd?
//
//	A pure-Go implementation of boustrophedon cellular decomposition:
//
//	  • Sweep-line decomposition: free space partitioned into monotone cells
//	  • Depth-first scheduling: every reachable cell reached, none swept twice
//	  • Back-and-forth coverage: per-cell zig-zag passes sized to the robot
//	  • Wall-following links: cells stitched into one continuous trajectory
//
// Everything is organized under six subpackages, leaves first:
//
//	geom/      — integer points, polygons, per-column edge tracing
//	event/     — IN/OUT/CEILING/FLOOR events, sweep sorting, slicing
//	cellgraph/ — the sweep-line decomposer and the cell adjacency arena
//	visit/     — the greedy depth-first cell scheduler
//	coverage/  — the per-cell boustrophedon generator
//	link/      — inter-cell wall-following transfers and path setup
//
// and composed by planner/, the single entry point, with cmd/bcdplan as
// a thin CLI around it.
//
// Quick ASCII example — one diamond splits the workspace into four cells:
//
//	┌─────┬───────────┬─────┐
//	│     │     1     │     │
//	│     ├─..─◇─..───┤     │
//	│  0  │  obstacle │  3  │
//	│     ├───..◇..───┤     │
//	│     │     2     │     │
//	└─────┴───────────┴─────┘
//
// The planner sweeps left to right, opens cells 1 and 2 at the diamond's
// leftmost vertex, merges them into cell 3 at its rightmost, then cleans
// each cell in depth-first order with strips spaced by the robot radius.
//
//	go get github.com/covplan/bcd/planner
package bcd
