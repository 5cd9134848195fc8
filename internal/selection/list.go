package selection

import "github.com/daptify14/keynav/internal/input"

// DefaultPageItems is how many selectable items a Viewport or Page step
// skips when the navigator has no page size.
const DefaultPageItems = 10

// ListNavigator walks a sectioned collection in traversal order. Nothing is
// cached; selectability is asked again on every scan.
type ListNavigator struct {
	Collection Collection
	CanSelect  Predicate
	// Axis is the direction the list runs in. Arrow keys across it are
	// ignored.
	Axis input.Axis
	// PageItems is the number of selectable items a page step moves.
	PageItems int
}

// Next returns the first selectable item after `after`.
func (n ListNavigator) Next(after IndexPath) (IndexPath, bool) {
	mustContain(n.Collection, after)
	return n.scanForward(IndexPath{Section: after.Section, Item: after.Item + 1})
}

// Previous returns the last selectable item before `before`.
func (n ListNavigator) Previous(before IndexPath) (IndexPath, bool) {
	mustContain(n.Collection, before)
	return n.scanBackward(IndexPath{Section: before.Section, Item: before.Item - 1})
}

// First returns the first selectable item in the collection.
func (n ListNavigator) First() (IndexPath, bool) {
	return n.scanForward(IndexPath{})
}

// Last returns the last selectable item in the collection.
func (n ListNavigator) Last() (IndexPath, bool) {
	last := n.Collection.NumberOfSections() - 1
	if last < 0 {
		return IndexPath{}, false
	}
	return n.scanBackward(IndexPath{Section: last, Item: n.Collection.NumberOfItems(last) - 1})
}

// Move applies a cardinal direction and step to from. A nil from starts at
// the first selectable item.
func (n ListNavigator) Move(from *IndexPath, dir input.Direction, step input.Step) (IndexPath, bool) {
	if from == nil {
		return n.First()
	}
	mustContain(n.Collection, *from)
	if !dir.IsCardinal() || dir.Axis() != n.Axis {
		return IndexPath{}, false
	}
	forward := dir.Sign() > 0

	switch step {
	case input.End:
		if forward {
			return n.Last()
		}
		return n.First()
	case input.Viewport, input.Page:
		return n.skip(*from, forward, n.pageItems())
	default:
		return n.skip(*from, forward, 1)
	}
}

// skip moves up to count selectable items, stopping early at either end.
func (n ListNavigator) skip(from IndexPath, forward bool, count int) (IndexPath, bool) {
	cur, moved := from, false
	for range count {
		var next IndexPath
		var ok bool
		if forward {
			next, ok = n.Next(cur)
		} else {
			next, ok = n.Previous(cur)
		}
		if !ok {
			break
		}
		cur, moved = next, true
	}
	return cur, moved
}

func (n ListNavigator) pageItems() int {
	if n.PageItems > 0 {
		return n.PageItems
	}
	return DefaultPageItems
}

func (n ListNavigator) scanForward(p IndexPath) (IndexPath, bool) {
	sections := n.Collection.NumberOfSections()
	for s := p.Section; s < sections; s++ {
		start := 0
		if s == p.Section {
			start = p.Item
		}
		for i := start; i < n.Collection.NumberOfItems(s); i++ {
			candidate := IndexPath{Section: s, Item: i}
			if n.CanSelect.allows(candidate) {
				return candidate, true
			}
		}
	}
	return IndexPath{}, false
}

// scanBackward starts at p, whose Item may be -1 to mean "before the
// section's first item".
func (n ListNavigator) scanBackward(p IndexPath) (IndexPath, bool) {
	for s := p.Section; s >= 0; s-- {
		start := n.Collection.NumberOfItems(s) - 1
		if s == p.Section {
			start = p.Item
		}
		for i := start; i >= 0; i-- {
			candidate := IndexPath{Section: s, Item: i}
			if n.CanSelect.allows(candidate) {
				return candidate, true
			}
		}
	}
	return IndexPath{}, false
}
