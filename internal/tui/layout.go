package tui

import (
	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/selection"
)

// --- Layout Calculations ---

// Layout constants shared between rendering and mouse hit-testing.
const (
	// headerLines is the number of rows above the pane: breadcrumb +
	// separator + tab bar.
	headerLines = 3

	// footerLines is the number of rows below the pane: status bar + help
	// line.
	footerLines = 2
)

// paneLayout is the geometry of one scrollable pane in content cells.
type paneLayout interface {
	selection.Layout
	ContentSize() geom.Size
	// ItemAt returns the item under a content-space point.
	ItemAt(geom.Point) (selection.IndexPath, bool)
}

// clampPaneHeight ensures a computed pane height is at least 1.
// Use only after the m.height == 0 (uninitialized) guard.
func clampPaneHeight(height int) int {
	if height < 1 {
		return 1
	}
	return height
}

func (m Model) paneHeight() int {
	if m.height == 0 {
		return 0
	}
	return clampPaneHeight(m.height - headerLines - footerLines)
}

func (m Model) effectiveWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width
}

// paneBounds is the visible size of the active pane in cells.
func (m Model) paneBounds() geom.Size {
	return geom.Sz(float64(m.effectiveWidth()), float64(m.paneHeight()))
}

// itemsIntersecting is the brute-force ItemsIn shared by the layouts.
func itemsIntersecting(l selection.Layout, r geom.Rect) []selection.IndexPath {
	var out []selection.IndexPath
	for s := range l.NumberOfSections() {
		for i := range l.NumberOfItems(s) {
			p := selection.IndexPath{Section: s, Item: i}
			if l.FrameOf(p).Intersects(r) {
				out = append(out, p)
			}
		}
	}
	return out
}
