// Package visit implements the cell-graph DFS scheduler: a greedy,
// parent-chain-backtracking traversal whose order is driven entirely by
// the neighbor-list ordering cellgraph establishes during
// decomposition.
//
// The traversal follows the first unvisited entry of each cell's ordered
// neighbor list and, when none remains, retreats strictly along the
// parent chain, re-recording every cell it lands on along the way. The
// recorded order therefore contains backtracking revisits, which the
// coverage generator later turns into single pass-through waypoints
// rather than second sweeps.
package visit
