// Package selection finds the next selectable item in sectioned lists and
// 2-D grids, and tracks which items are selected.
package selection

import (
	"cmp"
	"fmt"
)

// IndexPath addresses an item by section and position within the section.
type IndexPath struct {
	Section int
	Item    int
}

// Compare orders paths by section, then item.
func (p IndexPath) Compare(q IndexPath) int {
	if c := cmp.Compare(p.Section, q.Section); c != 0 {
		return c
	}
	return cmp.Compare(p.Item, q.Item)
}

func (p IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Item)
}

// Collection reports how many items each section holds.
type Collection interface {
	NumberOfSections() int
	NumberOfItems(section int) int
}

// Predicate decides whether an item may be selected. A nil Predicate
// allows every in-range item.
type Predicate func(IndexPath) bool

func (f Predicate) allows(p IndexPath) bool {
	return f == nil || f(p)
}

// Contains reports whether p addresses an item in c.
func Contains(c Collection, p IndexPath) bool {
	return p.Section >= 0 && p.Section < c.NumberOfSections() &&
		p.Item >= 0 && p.Item < c.NumberOfItems(p.Section)
}

func mustContain(c Collection, p IndexPath) {
	if !Contains(c, p) {
		panic(fmt.Sprintf("selection: index path %v out of range", p))
	}
}
