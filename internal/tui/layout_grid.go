package tui

import (
	"math"

	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/input"
	"github.com/daptify14/keynav/internal/selection"
)

// Smallest cell a zoomed grid shrinks to.
const (
	minCellWidth  = 6
	minCellHeight = 1
)

// gridLayout flows each section's items into fixed-size cells that wrap at
// the pane width. Every section starts on a new row under a one-row header.
type gridLayout struct {
	catalog    *Catalog
	width      float64
	cell       geom.Size
	columns    int
	rtl        bool
	sectionTop []float64
	height     float64
}

func newGridLayout(c *Catalog, width int, base geom.Size, zoom float64, dir input.LayoutDirection) gridLayout {
	cell := geom.Sz(
		math.Max(minCellWidth, math.Round(base.W*zoom)),
		math.Max(minCellHeight, math.Round(base.H*zoom)),
	)
	l := gridLayout{
		catalog: c,
		width:   float64(width),
		cell:    cell,
		columns: max(1, int(float64(width)/cell.W)),
		rtl:     dir == input.RightToLeft,
	}
	y := 0.0
	for s := range c.NumberOfSections() {
		l.sectionTop = append(l.sectionTop, y)
		rows := (c.NumberOfItems(s) + l.columns - 1) / l.columns
		y += 1 + float64(rows)*cell.H
	}
	l.height = y
	return l
}

func (l gridLayout) NumberOfSections() int         { return l.catalog.NumberOfSections() }
func (l gridLayout) NumberOfItems(section int) int { return l.catalog.NumberOfItems(section) }

func (l gridLayout) ContentSize() geom.Size {
	return geom.Sz(math.Max(l.width, float64(l.columns)*l.cell.W), l.height)
}

// FrameOf places items left to right, or right to left for RTL layouts.
func (l gridLayout) FrameOf(p selection.IndexPath) geom.Rect {
	col := p.Item % l.columns
	row := p.Item / l.columns
	x := float64(col) * l.cell.W
	if l.rtl {
		x = math.Max(l.width, float64(l.columns)*l.cell.W) - float64(col+1)*l.cell.W
	}
	y := l.sectionTop[p.Section] + 1 + float64(row)*l.cell.H
	return geom.R(x, y, l.cell.W, l.cell.H)
}

func (l gridLayout) ItemsIn(r geom.Rect) []selection.IndexPath {
	return itemsIntersecting(l, r)
}

func (l gridLayout) ItemAt(pt geom.Point) (selection.IndexPath, bool) {
	hits := l.ItemsIn(geom.R(math.Floor(pt.X), math.Floor(pt.Y), 1, 1))
	if len(hits) == 0 {
		return selection.IndexPath{}, false
	}
	return hits[0], true
}

// headerAt reports the section whose header occupies content row y.
func (l gridLayout) headerAt(y int) (int, bool) {
	for s, top := range l.sectionTop {
		if int(top) == y {
			return s, true
		}
	}
	return 0, false
}
