// Package scroll turns classified key input into bounded scroll offsets and
// drives them through the point animator.
package scroll

import (
	"math"

	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/input"
)

// Geometry is the scroll view state needed to bound offsets.
type Geometry struct {
	Bounds      geom.Size
	ContentSize geom.Size
	Insets      geom.Insets
}

// OffsetRange returns the smallest and largest legal offsets. When content
// is smaller than the viewport the range collapses to the minimum.
func (g Geometry) OffsetRange() (lo, hi geom.Point) {
	lo = geom.Pt(-g.Insets.Left, -g.Insets.Top)
	hi = geom.Pt(
		math.Max(lo.X, g.ContentSize.W-g.Bounds.W+g.Insets.Right),
		math.Max(lo.Y, g.ContentSize.H-g.Bounds.H+g.Insets.Bottom),
	)
	return lo, hi
}

// Scrollable reports whether content overflows the visible area along axis.
func (g Geometry) Scrollable(axis input.Axis) bool {
	lo, hi := g.OffsetRange()
	if axis == input.Horizontal {
		return hi.X > lo.X
	}
	return hi.Y > lo.Y
}

// PrimaryAxis is vertical when content scrolls vertically, horizontal when it
// only scrolls horizontally, and vertical otherwise.
func (g Geometry) PrimaryAxis() input.Axis {
	if !g.Scrollable(input.Vertical) && g.Scrollable(input.Horizontal) {
		return input.Horizontal
	}
	return input.Vertical
}

// VisibleRect is the part of the content visible at offset, excluding insets.
func (g Geometry) VisibleRect(offset geom.Point) geom.Rect {
	return geom.R(offset.X, offset.Y, g.Bounds.W, g.Bounds.H).Inset(g.Insets)
}

// Clamp bounds offset to the legal range independently per axis. Clamping
// an already clamped offset returns it unchanged.
func Clamp(offset geom.Point, g Geometry) geom.Point {
	lo, hi := g.OffsetRange()
	return geom.Pt(
		math.Min(hi.X, math.Max(lo.X, offset.X)),
		math.Min(hi.Y, math.Max(lo.Y, offset.Y)),
	)
}
