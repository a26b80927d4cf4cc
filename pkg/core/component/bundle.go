package component

import (
	"cmp"
	"slices"

	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

// Bundle is an ordered collection of sibling components. Members render by ascending
// weight, ties in insertion order. Nil components are ignored.
type Bundle struct {
	list []Component
}

func NewBundle(cs ...Component) *Bundle {
	b := &Bundle{}
	for _, c := range cs {
		b.Add(c)
	}
	return b
}

func (b *Bundle) Add(c Component) *Bundle {
	if c == nil {
		return b
	}
	b.list = append(b.list, c)
	return b
}

func (b *Bundle) Prepend(c Component) *Bundle {
	if c == nil {
		return b
	}
	b.list = slices.Insert(b.list, 0, c)
	return b
}

// InsertAfterID inserts c after the member with the given id, or appends it.
func (b *Bundle) InsertAfterID(id string, c Component) *Bundle {
	if c == nil {
		return b
	}
	if i := b.index(id); i >= 0 {
		b.list = slices.Insert(b.list, i+1, c)
		return b
	}
	return b.Add(c)
}

// InsertBeforeID inserts c before the member with the given id, or prepends it.
func (b *Bundle) InsertBeforeID(id string, c Component) *Bundle {
	if c == nil {
		return b
	}
	if i := b.index(id); i >= 0 {
		b.list = slices.Insert(b.list, i, c)
		return b
	}
	return b.Prepend(c)
}

func (b *Bundle) RemoveByID(id string) *Bundle {
	if i := b.index(id); i >= 0 {
		b.list = slices.Delete(b.list, i, i+1)
	}
	return b
}

// ReplaceByID swaps the member with the given id for c. Nothing happens when id is unknown
// or c is nil.
func (b *Bundle) ReplaceByID(id string, c Component) *Bundle {
	if c == nil {
		return b
	}
	if i := b.index(id); i >= 0 {
		b.list[i] = c
	}
	return b
}

func (b *Bundle) Reset() *Bundle {
	b.list = nil
	return b
}

func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.list)
}

// Get returns the member with the given id.
func (b *Bundle) Get(id string) (Component, bool) {
	if i := b.index(id); i >= 0 {
		return b.list[i], true
	}
	return nil, false
}

// Render renders a weight sorted copy of the members. The bundle itself is not reordered.
func (b *Bundle) Render(cx *Context) html.Markup {
	if b == nil || len(b.list) == 0 {
		return ""
	}
	sorted := slices.Clone(b.list)
	slices.SortStableFunc(sorted, func(x, y Component) int { return cmp.Compare(x.Weight(), y.Weight()) })
	parts := make([]html.Markup, 0, len(sorted))
	for _, c := range sorted {
		parts = append(parts, Render(c, cx))
	}
	return html.Join(parts...)
}

func (b *Bundle) index(id string) int {
	if b == nil || id == "" {
		return -1
	}
	return slices.IndexFunc(b.list, func(c Component) bool { return c.ID() == id })
}
