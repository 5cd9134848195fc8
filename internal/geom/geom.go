// Package geom holds the small value types shared by the navigation core:
// points, sizes, rectangles and edge insets. Units are whatever the host
// uses; the terminal host measures in cells.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2-D position or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vector arithmetic.
func (p Point) Add(q Point) Point        { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point        { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point    { return Point{p.X * k, p.Y * k} }
func (p Point) Length() float64          { return math.Hypot(p.X, p.Y) }
func (p Point) IsZero() bool             { return p.X == 0 && p.Y == 0 }
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h float64) Size { return Size{W: w, H: h} }

// Insets shrink a rectangle from each edge.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Rect is an axis-aligned rectangle with origin at its minimum corner.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Edge and midline coordinates.
func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

func (r Rect) Center() Point { return Point{r.MidX(), r.MidY()} }
func (r Rect) Origin() Point { return Point{r.X, r.Y} }
func (r Rect) Size() Size    { return Size{r.W, r.H} }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether r and s overlap with positive area. Rectangles
// that only share an edge do not intersect.
func (r Rect) Intersects(s Rect) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	return r.MinX() < s.MaxX() && s.MinX() < r.MaxX() &&
		r.MinY() < s.MaxY() && s.MinY() < r.MaxY()
}

// Contains reports whether s lies entirely inside r.
func (r Rect) Contains(s Rect) bool {
	return s.MinX() >= r.MinX() && s.MaxX() <= r.MaxX() &&
		s.MinY() >= r.MinY() && s.MaxY() <= r.MaxY()
}

// Inset returns r shrunk by in. Widths and heights never go negative.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: math.Max(0, r.W-in.Left-in.Right),
		H: math.Max(0, r.H-in.Top-in.Bottom),
	}
}

// Offset returns r translated by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g %gx%g}", r.X, r.Y, r.W, r.H)
}
