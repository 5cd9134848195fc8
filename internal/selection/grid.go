package selection

import (
	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/input"
	"github.com/daptify14/keynav/internal/scroll"
)

// DefaultSearchDistance is how far past the current item's edge the grid
// navigator looks for a neighbour.
const DefaultSearchDistance = 500

// EndPolicy decides what an End step does in a grid.
type EndPolicy int

const (
	// EndFarthest jumps to the farthest item in the current row or column.
	EndFarthest EndPolicy = iota
	// EndClosest treats End like a single step.
	EndClosest
)

func (p EndPolicy) String() string {
	if p == EndClosest {
		return "closest"
	}
	return "farthest"
}

// Layout supplies item geometry. Results must not change during a single
// navigation call.
type Layout interface {
	Collection
	FrameOf(IndexPath) geom.Rect
	ItemsIn(geom.Rect) []IndexPath
}

// GridNavigator picks the spatially nearest selectable neighbour.
type GridNavigator struct {
	Layout         Layout
	CanSelect      Predicate
	SearchDistance float64
	EndPolicy      EndPolicy
}

// Move returns the neighbour of from in a cardinal direction. A nil from
// starts at the first selectable item. Viewport and Page steps move one
// item. Equidistant candidates resolve to the lowest index path.
func (n GridNavigator) Move(from *IndexPath, dir input.Direction, step input.Step) (IndexPath, bool) {
	if from == nil {
		return ListNavigator{Collection: n.Layout, CanSelect: n.CanSelect}.First()
	}
	mustContain(n.Layout, *from)
	if !dir.IsCardinal() {
		return IndexPath{}, false
	}

	farthest := step == input.End && n.EndPolicy == EndFarthest
	reach := n.searchDistance()
	if farthest {
		reach = scroll.EndDistance
	}

	frame := n.Layout.FrameOf(*from)
	area := searchRect(frame, dir, reach)
	origin := along(frame.Center(), dir)

	var best IndexPath
	var bestDistance float64
	found := false
	for _, candidate := range n.Layout.ItemsIn(area) {
		if candidate == *from || !Contains(n.Layout, candidate) || !n.CanSelect.allows(candidate) {
			continue
		}
		cf := n.Layout.FrameOf(candidate)
		if !cf.Intersects(area) {
			continue
		}
		distance := (along(cf.Center(), dir) - origin) * dir.Sign()
		if distance <= 0 {
			continue
		}
		better := !found ||
			(farthest && distance > bestDistance) ||
			(!farthest && distance < bestDistance) ||
			(distance == bestDistance && candidate.Compare(best) < 0)
		if better {
			best, bestDistance, found = candidate, distance, true
		}
	}
	return best, found
}

func (n GridNavigator) searchDistance() float64 {
	if n.SearchDistance > 0 {
		return n.SearchDistance
	}
	return DefaultSearchDistance
}

// searchRect extends from frame's edge in dir by reach, spanning frame's
// cross-axis extent.
func searchRect(frame geom.Rect, dir input.Direction, reach float64) geom.Rect {
	switch dir {
	case input.Up:
		return geom.R(frame.X, frame.MinY()-reach, frame.W, reach)
	case input.Down:
		return geom.R(frame.X, frame.MaxY(), frame.W, reach)
	case input.Left:
		return geom.R(frame.MinX()-reach, frame.Y, reach, frame.H)
	default:
		return geom.R(frame.MaxX(), frame.Y, reach, frame.H)
	}
}

func along(p geom.Point, dir input.Direction) float64 {
	if dir.Axis() == input.Horizontal {
		return p.X
	}
	return p.Y
}
