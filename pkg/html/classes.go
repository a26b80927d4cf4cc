package html

import "strings"

type ClassesOp int

const (
	AddClasses ClassesOp = iota
	PrependClasses
	RemoveClasses
	ToggleClasses
	SetClasses
	ClearClasses
)

// Classes is an ordered, duplicate free list of CSS class names.
type Classes struct {
	list []string
}

func NewClasses(classes string) Classes {
	var c Classes
	c.Alter(AddClasses, classes)
	return c
}

// Alter applies op with the space separated class names in classes.
func (c *Classes) Alter(op ClassesOp, classes string) *Classes {
	names := strings.Fields(classes)
	switch op {
	case AddClasses:
		for _, n := range names {
			if !c.Has(n) {
				c.list = append(c.list, n)
			}
		}
	case PrependClasses:
		var head []string
		for _, n := range names {
			if !c.Has(n) && !contains(head, n) {
				head = append(head, n)
			}
		}
		c.list = append(head, c.list...)
	case RemoveClasses:
		c.list = filter(c.list, func(s string) bool { return !contains(names, s) })
	case ToggleClasses:
		for _, n := range names {
			if c.Has(n) {
				c.list = filter(c.list, func(s string) bool { return s != n })
			} else {
				c.list = append(c.list, n)
			}
		}
	case SetClasses:
		c.list = nil
		c.Alter(AddClasses, classes)
	case ClearClasses:
		c.list = nil
	}
	return c
}

// Replace swaps class old for the classes in with, keeping its position.
func (c *Classes) Replace(old, with string) *Classes {
	i := indexOf(c.list, old)
	if i < 0 {
		return c.Alter(AddClasses, with)
	}
	rest := append([]string{}, c.list[i+1:]...)
	c.list = c.list[:i]
	c.Alter(AddClasses, with)
	for _, n := range rest {
		if !c.Has(n) {
			c.list = append(c.list, n)
		}
	}
	return c
}

func (c Classes) Has(class string) bool { return contains(c.list, class) }

func (c Classes) IsEmpty() bool { return len(c.list) == 0 }

func (c Classes) String() string { return strings.Join(c.list, " ") }

// Attr renders ` class="..."`, or nothing when empty.
func (c Classes) Attr() Markup {
	if len(c.list) == 0 {
		return ""
	}
	return Sprintf(` class="%s"`, c.String())
}

func contains(list []string, s string) bool { return indexOf(list, s) >= 0 }

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func filter(list []string, keep func(string) bool) []string {
	out := list[:0]
	for _, v := range list {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
