// Package handle assigns process-wide identities to Go types.
//
// A Handle is derived from the registering type itself (never from a user supplied
// string), so two distinct types can not collide and the same type always yields the
// same Handle for the life of the process. Modules, components and actions are keyed
// by their handle everywhere else in the framework.
package handle

import (
	"reflect"
	"sync"
)

// Handle is an opaque, comparable identity for a Go type. The zero Handle matches no type.
type Handle struct {
	id uint64
}

type binding struct {
	h    Handle
	name string
}

var (
	mu     sync.RWMutex
	byType = map[reflect.Type]binding{}
	names  = map[Handle]string{}
	next   uint64
)

// Of returns the handle of T.
func Of[T any]() Handle {
	return ofType(reflect.TypeOf((*T)(nil)).Elem())
}

// OfValue returns the handle of the dynamic type of v. A nil interface has the zero Handle.
func OfValue(v any) Handle {
	if v == nil {
		return Handle{}
	}
	return ofType(reflect.TypeOf(v))
}

func ofType(t reflect.Type) Handle {
	mu.RLock()
	b, ok := byType[t]
	mu.RUnlock()
	if ok {
		return b.h
	}

	mu.Lock()
	defer mu.Unlock()
	// lost the race to another writer
	if b, ok := byType[t]; ok {
		return b.h
	}
	next++
	b = binding{h: Handle{id: next}, name: typeName(t)}
	byType[t] = b
	names[b.h] = b.name
	return b.h
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.id == 0 }

// String returns the short type name the handle was derived from, for diagnostics.
func (h Handle) String() string {
	if h.IsZero() {
		return "<none>"
	}
	mu.RLock()
	defer mu.RUnlock()
	return names[h]
}

// typeName strips pointers and the package path: *base.Paragraph -> Paragraph.
func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}
