package tui

import (
	"math"

	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/selection"
)

// listRow is one rendered row of the list pane: a section header or an
// item.
type listRow struct {
	header  bool
	section int
	item    int
}

// listLayout stacks each section as a one-row header followed by one row
// per item.
type listLayout struct {
	catalog *Catalog
	width   float64
	rows    []listRow
	itemRow [][]int
}

func newListLayout(c *Catalog, width int) listLayout {
	l := listLayout{catalog: c, width: float64(width)}
	for s := range c.NumberOfSections() {
		l.rows = append(l.rows, listRow{header: true, section: s})
		rows := make([]int, c.NumberOfItems(s))
		for i := range rows {
			rows[i] = len(l.rows)
			l.rows = append(l.rows, listRow{section: s, item: i})
		}
		l.itemRow = append(l.itemRow, rows)
	}
	return l
}

func (l listLayout) NumberOfSections() int         { return l.catalog.NumberOfSections() }
func (l listLayout) NumberOfItems(section int) int { return l.catalog.NumberOfItems(section) }
func (l listLayout) ContentSize() geom.Size        { return geom.Sz(l.width, float64(len(l.rows))) }

func (l listLayout) FrameOf(p selection.IndexPath) geom.Rect {
	return geom.R(0, float64(l.itemRow[p.Section][p.Item]), l.width, 1)
}

func (l listLayout) ItemsIn(r geom.Rect) []selection.IndexPath {
	var out []selection.IndexPath
	first := max(0, int(math.Floor(r.MinY())))
	last := min(len(l.rows), int(math.Ceil(r.MaxY())))
	for y := first; y < last; y++ {
		row := l.rows[y]
		if row.header {
			continue
		}
		p := selection.IndexPath{Section: row.section, Item: row.item}
		if l.FrameOf(p).Intersects(r) {
			out = append(out, p)
		}
	}
	return out
}

func (l listLayout) ItemAt(pt geom.Point) (selection.IndexPath, bool) {
	y := int(math.Floor(pt.Y))
	if y < 0 || y >= len(l.rows) || pt.X < 0 || pt.X >= l.width {
		return selection.IndexPath{}, false
	}
	row := l.rows[y]
	if row.header {
		return selection.IndexPath{}, false
	}
	return selection.IndexPath{Section: row.section, Item: row.item}, true
}
