package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/geom"
)

// wheelVelocity is the fling speed one wheel notch adds, in cells per
// second. Passive deceleration carries it about a quarter of that far.
const wheelVelocity = 40

// releaseWindow is how recent the last drag motion must be for its speed to
// carry into a fling on release.
const releaseWindow = 100 * time.Millisecond

// inPane reports whether screen row y is inside the pane area.
func (m Model) inPane(y int) bool {
	return y >= headerLines && y < headerLines+m.paneHeight()
}

// contentPoint converts a screen cell to pane content coordinates.
func (m Model) contentPoint(x, y int) geom.Point {
	return m.activePane().scroller.Offset().Add(geom.Pt(float64(x), float64(y-headerLines)))
}

// --- Mouse wheel handler ---

func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.ui.showHelp || !m.inPane(msg.Y) {
		return m, nil
	}

	var v geom.Point
	switch msg.Button {
	case tea.MouseWheelUp:
		v = geom.Pt(0, -wheelVelocity)
	case tea.MouseWheelDown:
		v = geom.Pt(0, wheelVelocity)
	case tea.MouseWheelLeft:
		v = geom.Pt(-wheelVelocity, 0)
	case tea.MouseWheelRight:
		v = geom.Pt(wheelVelocity, 0)
	default:
		return m, nil
	}
	// Shift turns a vertical wheel into a horizontal one.
	if msg.Mod&tea.ModShift != 0 {
		v = geom.Pt(v.Y, v.X)
	}

	m.activePane().scroller.Fling(m.now(), v)
	return m, m.animate()
}

// --- Drag handlers ---

func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.ui.showHelp || msg.Button != tea.MouseLeft || !m.inPane(msg.Y) {
		return m, nil
	}
	m.drag = dragState{active: true, lastX: msg.X, lastY: msg.Y, lastAt: m.now()}
	m.activePane().scroller.BeginInteraction()
	return m, nil
}

func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if !m.drag.active {
		return m, nil
	}
	dx, dy := msg.X-m.drag.lastX, msg.Y-m.drag.lastY
	if dx == 0 && dy == 0 {
		return m, nil
	}

	// Content follows the pointer, so the offset moves the other way.
	delta := geom.Pt(float64(-dx), float64(-dy))
	now := m.now()
	if dt := now.Sub(m.drag.lastAt).Seconds(); dt > 0 {
		m.drag.velocity = delta.Scale(1 / dt)
	}
	m.activePane().scroller.Drag(delta)

	m.drag.moved = true
	m.drag.lastX, m.drag.lastY = msg.X, msg.Y
	m.drag.lastAt = now
	return m, nil
}

func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if !m.drag.active {
		return m, nil
	}
	drag := m.drag
	m.drag = dragState{}

	now := m.now()
	var velocity geom.Point
	if drag.moved && now.Sub(drag.lastAt) <= releaseWindow {
		velocity = drag.velocity
	}
	m.activePane().scroller.EndInteraction(now, velocity)

	if !drag.moved {
		return m.clickItem(msg.X, msg.Y)
	}
	return m, m.animate()
}

// clickItem selects the item under a click; clicking the focused item
// activates it.
func (m Model) clickItem(x, y int) (tea.Model, tea.Cmd) {
	layout := m.activeLayout()
	if layout == nil || !m.inPane(y) {
		return m, m.animate()
	}
	p, ok := layout.ItemAt(m.contentPoint(x, y))
	if !ok || !m.catalog.Selectable(p) {
		return m, m.animate()
	}
	if cur, ok := m.selection.Current(); ok && cur == p {
		return m.openDoc(m.catalog.Entry(p).Path, &p)
	}
	sink := m.sink()
	m.selection.Select(p, sink, sink)
	return m, m.animate()
}
