package event

import (
	"sort"

	"github.com/covplan/bcd/geom"
)

// Generate converts a list of convex, counter-clockwise polygons into
// the globally sweep-sorted event list.
//
// For each polygon: the leftmost vertex becomes IN, the rightmost becomes
// OUT, and every other vertex is CEILING if it lies on the chain walked
// forward in winding order from IN to OUT (the obstacle's lower edge as
// drawn, Y down) or FLOOR otherwise. The concatenated list is then stably sorted by the
// Point order so ties (two events at the same (x,y)) keep polygon
// traversal order.
//
// Complexity: O(n log n) where n = Σ|polygon_i|.
func Generate(polygons []geom.Polygon) ([]Event, error) {
	var events []Event
	for obstacleID, poly := range polygons {
		left, right, err := poly.Extrema()
		if err != nil {
			return nil, err
		}

		events = append(events, Event{ObstacleID: obstacleID, Point: poly[left], Kind: In})
		events = append(events, Event{ObstacleID: obstacleID, Point: poly[right], Kind: Out})

		for i := range poly {
			if i == left || i == right {
				continue
			}
			var k Kind
			if left < right {
				if left < i && i < right {
					k = Ceiling
				} else {
					k = Floor
				}
			} else { // left > right
				if right < i && i < left {
					k = Floor
				} else {
					k = Ceiling
				}
			}
			events = append(events, Event{ObstacleID: obstacleID, Point: poly[i], Kind: k})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Point.Less(events[j].Point)
	})

	return events, nil
}
