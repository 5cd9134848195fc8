package selection

import (
	"slices"

	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/input"
	"github.com/daptify14/keynav/internal/scroll"
)

// Navigator finds the item a directional move lands on.
type Navigator interface {
	Move(from *IndexPath, dir input.Direction, step input.Step) (IndexPath, bool)
}

// Viewport reports what is on screen and where items are.
type Viewport interface {
	VisibleRect() geom.Rect
	FrameOf(IndexPath) geom.Rect
}

// Sink applies selection changes to the host. A nil path clears the
// selection.
type Sink interface {
	SetSelection(p *IndexPath, pos scroll.Position)
	ScrollTo(p IndexPath, pos scroll.Position, animated bool)
}

// Controller owns the selection state. Collaborators are passed per call
// and never retained.
type Controller struct {
	// RequiresSelection forbids clearing the selection.
	RequiresSelection bool
	// Multiple allows SelectAll.
	Multiple bool

	current  *IndexPath
	selected []IndexPath
}

// Current returns the focused item.
func (c *Controller) Current() (IndexPath, bool) {
	if c.current == nil {
		return IndexPath{}, false
	}
	return *c.current, true
}

// Selected returns the selected items in traversal order.
func (c *Controller) Selected() []IndexPath {
	return slices.Clone(c.selected)
}

// IsSelected reports whether p is part of the selection.
func (c *Controller) IsSelected(p IndexPath) bool {
	_, ok := slices.BinarySearchFunc(c.selected, p, IndexPath.Compare)
	return ok
}

// Navigate moves the selection with nav and reveals the new item. It
// returns false when nav finds nothing.
func (c *Controller) Navigate(dir input.Direction, step input.Step, nav Navigator, vp Viewport, sink Sink) bool {
	next, ok := nav.Move(c.current, dir, step)
	if !ok {
		return false
	}
	c.Select(next, vp, sink)
	return true
}

// Select replaces the selection with p. When p is not fully visible the
// selection is applied first and a single animated scroll towards the
// nearer edge follows.
func (c *Controller) Select(p IndexPath, vp Viewport, sink Sink) {
	c.current = &p
	c.selected = []IndexPath{p}

	frame := vp.FrameOf(p)
	visible := vp.VisibleRect()
	sink.SetSelection(&p, scroll.PositionNone)
	if visible.Contains(frame) {
		return
	}
	sink.ScrollTo(p, nearerEdge(frame, visible), true)
}

// Activate returns the item an activation applies to.
func (c *Controller) Activate() (IndexPath, bool) {
	return c.Current()
}

// Clear drops the selection unless a selection is required.
func (c *Controller) Clear(sink Sink) bool {
	if c.RequiresSelection || (c.current == nil && len(c.selected) == 0) {
		return false
	}
	c.current = nil
	c.selected = nil
	sink.SetSelection(nil, scroll.PositionNone)
	return true
}

// ItemRemoved updates the selection after p was deleted from its section.
// Later items in the section shift down by one.
func (c *Controller) ItemRemoved(p IndexPath, sink Sink) {
	wasCurrent := c.current != nil && *c.current == p

	kept := c.selected[:0]
	for _, s := range c.selected {
		if s == p {
			continue
		}
		kept = append(kept, shiftAfterRemoval(s, p))
	}
	c.selected = kept

	if wasCurrent {
		c.current = nil
		sink.SetSelection(nil, scroll.PositionNone)
		return
	}
	if c.current != nil {
		shifted := shiftAfterRemoval(*c.current, p)
		c.current = &shifted
	}
}

// SelectAll selects every selectable item when multiple selection is
// allowed, and reports whether anything was selected.
func (c *Controller) SelectAll(coll Collection, canSelect Predicate) bool {
	if !c.Multiple {
		return false
	}
	var all []IndexPath
	for s := range coll.NumberOfSections() {
		for i := range coll.NumberOfItems(s) {
			p := IndexPath{Section: s, Item: i}
			if canSelect.allows(p) {
				all = append(all, p)
			}
		}
	}
	if len(all) == 0 {
		return false
	}
	c.selected = all
	if c.current == nil {
		first := all[0]
		c.current = &first
	}
	return true
}

func shiftAfterRemoval(p, removed IndexPath) IndexPath {
	if p.Section == removed.Section && p.Item > removed.Item {
		p.Item--
	}
	return p
}

// nearerEdge picks the scroll position for a frame that is not fully
// visible: the vertical edge it is closest to when it overflows vertically,
// otherwise the horizontal one.
func nearerEdge(frame, visible geom.Rect) scroll.Position {
	if frame.MinY() < visible.MinY() || frame.MaxY() > visible.MaxY() {
		if frame.MidY() < visible.MidY() {
			return scroll.PositionTop
		}
		return scroll.PositionBottom
	}
	if frame.MidX() < visible.MidX() {
		return scroll.PositionLeft
	}
	return scroll.PositionRight
}
