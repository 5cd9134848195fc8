package scroll

import (
	"math"

	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/input"
)

// NudgeLines is the number of reference lines one nudge moves.
const NudgeLines = 3

// EndDistance is far enough to clamp to any content boundary while staying
// finite for later arithmetic.
const EndDistance = 1e9

// Metrics carries the host's reference sizes and reading direction.
type Metrics struct {
	LineHeight float64
	Layout     input.LayoutDirection
}

// DefaultMetrics measures in terminal rows.
func DefaultMetrics() Metrics {
	return Metrics{LineHeight: 1, Layout: input.LeftToRight}
}

// NudgeDistance is the length of a single nudge.
func (m Metrics) NudgeDistance() float64 {
	return NudgeLines * m.LineHeight
}

// Resolve returns the unclamped displacement for moving in dir by step.
// Semantic directions are resolved against the geometry's primary axis.
func Resolve(dir input.Direction, step input.Step, g Geometry, m Metrics) geom.Point {
	dir = input.Resolve(dir, g.PrimaryAxis(), m.Layout)
	axis := dir.Axis()

	var extent, insets float64
	if axis == input.Horizontal {
		extent = g.Bounds.W
		insets = g.Insets.Left + g.Insets.Right
	} else {
		extent = g.Bounds.H
		insets = g.Insets.Top + g.Insets.Bottom
	}

	var magnitude float64
	switch step {
	case input.Nudge:
		magnitude = m.NudgeDistance()
	case input.Viewport:
		// One nudge of overlap keeps context; tiny viewports still move a nudge.
		magnitude = math.Max(m.NudgeDistance(), extent-insets-m.NudgeDistance())
	case input.Page:
		magnitude = extent
	case input.End:
		magnitude = EndDistance
	}

	magnitude *= dir.Sign()
	if axis == input.Horizontal {
		return geom.Pt(magnitude, 0)
	}
	return geom.Pt(0, magnitude)
}

// Position is where a revealed item should land in the visible area.
type Position int

const (
	PositionNone Position = iota
	PositionTop
	PositionBottom
	PositionLeft
	PositionRight
)

var positionNames = [...]string{"none", "top", "bottom", "left", "right"}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "unknown"
	}
	return positionNames[p]
}

// RevealOffset returns the clamped offset that puts frame against the edge
// named by pos. The other axis keeps its current value.
func RevealOffset(frame geom.Rect, pos Position, current geom.Point, g Geometry) geom.Point {
	target := current
	switch pos {
	case PositionTop:
		target.Y = frame.MinY() - g.Insets.Top
	case PositionBottom:
		target.Y = frame.MaxY() - g.Bounds.H + g.Insets.Bottom
	case PositionLeft:
		target.X = frame.MinX() - g.Insets.Left
	case PositionRight:
		target.X = frame.MaxX() - g.Bounds.W + g.Insets.Right
	}
	return Clamp(target, g)
}
