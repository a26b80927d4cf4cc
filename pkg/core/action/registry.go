package action

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrFrozen is the panic value raised when an action is added after bootstrap.
var ErrFrozen = errors.New("action: registry is frozen")

// Registry maps extension points to weight-ordered listeners.
type Registry struct {
	mu      sync.RWMutex
	frozen  atomic.Bool
	buckets map[Key][]Action
	total   int
}

func NewRegistry() *Registry {
	return &Registry{buckets: make(map[Key][]Action)}
}

// Add inserts a into the bucket of its key, after every listener of lower or equal
// weight. Add panics once the registry is frozen.
func (r *Registry) Add(a Action) {
	if a == nil {
		panic("action: nil action")
	}
	if r.frozen.Load() {
		panic(fmt.Errorf("%w: add %s", ErrFrozen, a.Key()))
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := a.Key()
	list := r.buckets[k]
	i := len(list)
	for i > 0 && list[i-1].Weight() > a.Weight() {
		i--
	}
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = a
	r.buckets[k] = list
	r.total++
}

// Freeze ends the registration phase.
func (r *Registry) Freeze() { r.frozen.Store(true) }

func (r *Registry) Frozen() bool { return r.frozen.Load() }

// Dispatch calls fn for every action registered on k that matches ref, in ascending
// weight and then registration order. It returns the number of actions invoked.
// A nil registry dispatches nothing.
func (r *Registry) Dispatch(k Key, ref string, fn func(Action)) int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	list := r.buckets[k]
	r.mu.RUnlock()

	n := 0
	for _, a := range list {
		if !a.Matches(ref) {
			continue
		}
		fn(a)
		n++
	}
	if n > 0 {
		dispatchedActions.WithLabelValues(k.Point.String()).Add(float64(n))
	}
	return n
}

// Len returns the number of listeners on k.
func (r *Registry) Len(k Key) int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buckets[k])
}

// Total returns the number of registered actions.
func (r *Registry) Total() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total
}
