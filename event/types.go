package event

import "github.com/covplan/bcd/geom"

// Kind classifies an Event by its role in the sweep.
type Kind int

const (
	// In marks an obstacle's leftmost vertex: the sweep line enters it.
	In Kind = iota
	// Out marks an obstacle's rightmost vertex: the sweep line leaves it.
	Out
	// Ceiling marks an intermediate vertex on the chain walked forward
	// from IN to OUT: the obstacle's lower edge as drawn (Y down), which
	// extends the ceiling of the cell below the obstacle.
	Ceiling
	// Floor marks an intermediate vertex on the other chain: the
	// obstacle's upper edge as drawn, which extends the floor of the cell
	// above the obstacle.
	Floor
)

func (k Kind) String() string {
	switch k {
	case In:
		return "IN"
	case Out:
		return "OUT"
	case Ceiling:
		return "CEILING"
	case Floor:
		return "FLOOR"
	default:
		return "UNKNOWN"
	}
}

// BoundarySentinel is the ObstacleID given to the synthetic CEILING/FLOOR
// events the decomposer adds at the top and bottom of every slice; it
// never collides with a real polygon index, which is always >= 0.
const BoundarySentinel = -1

// Event is a single vertex touched by the sweep line.
type Event struct {
	ObstacleID int
	Point      geom.Point
	Kind       Kind

	// OriginalIndex records the event's position within its augmented
	// slice (top to bottom) before the IN/OUT-first re-sort. Downstream
	// target-cell lookups (CEILING/FLOOR) and neighbor lookups (IN/OUT)
	// both key off this, not the post-sort position.
	OriginalIndex int

	// Used is cleared at the start of every decomposition run and set
	// once an event has been consumed by Open, Close, or an edge append.
	Used bool
}

// X and Y are convenience accessors mirroring the Point fields, used
// throughout the decomposer's event-driven branches.
func (e Event) X() int { return e.Point.X }
func (e Event) Y() int { return e.Point.Y }
