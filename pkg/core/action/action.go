// Package action implements the weighted, multi-listener hook registry.
//
// Modules contribute actions targeting extension points (before a page body is
// prepared, after a component is prepared, ...). Actions are collected into a Registry
// during the single-threaded bootstrap, the registry is frozen, and from then on it is
// only dispatched from concurrently served requests.
package action

import "github.com/joeydtaylor/steeze-pages/pkg/core/handle"

// Key identifies an extension point. Scope narrows a generic point to one type, e.g.
// "before prepare" scoped to the Menu component.
type Key struct {
	Point handle.Handle
	Scope handle.Handle
}

// KeyOf returns the unscoped key for extension point type P.
func KeyOf[P any]() Key {
	return Key{Point: handle.Of[P]()}
}

// Scoped returns k narrowed to scope s.
func (k Key) Scoped(s handle.Handle) Key {
	k.Scope = s
	return k
}

func (k Key) String() string {
	if k.Scope.IsZero() {
		return k.Point.String()
	}
	return k.Point.String() + "/" + k.Scope.String()
}

// Action is a registered listener.
type Action interface {
	// Key is the extension point the action listens on.
	Key() Key
	// Weight orders listeners of the same key, lower runs first.
	Weight() int
	// Matches reports whether the action applies to the caller supplied reference.
	Matches(ref string) bool
}

// Base carries the weight and referer filter shared by all actions. Embed it.
type Base struct {
	weight  int
	referer string
}

func (b Base) Weight() int { return b.weight }

// Referer returns the id filter, empty when the action is unfiltered.
func (b Base) Referer() string { return b.referer }

func (b Base) Matches(ref string) bool {
	return b.referer == "" || b.referer == ref
}

func (b *Base) SetWeight(w int) { b.weight = w }

// SetReferer restricts the action to callers whose reference equals id.
func (b *Base) SetReferer(id string) { b.referer = id }
