package cellgraph

import "errors"

// Sentinel errors for the decomposer: invariant failures that abort the
// planner. They are never expected on well-formed input (convex,
// non-interleaved obstacles); inputs that break the preconditions are
// rejected rather than repaired into a guessed topology.
var (
	// ErrNoSpanningCell indicates an IN event's y does not lie strictly
	// inside any active cell's ceiling/floor span, or that a CEILING or
	// FLOOR event's target slot lies past the end of the active list.
	ErrNoSpanningCell = errors.New("cellgraph: no active cell spans the IN event's y")
	// ErrNoAdjacentPair indicates an OUT event's y does not fall between
	// two adjacent active cells.
	ErrNoAdjacentPair = errors.New("cellgraph: no adjacent active-cell pair spans the OUT event's y")
)
