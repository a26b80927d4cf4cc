package module

import (
	"fmt"
	"strings"

	"github.com/joeydtaylor/steeze-pages/pkg/core/handle"
)

// CompositionError reports a module graph that can not be enabled.
type CompositionError struct {
	Module string
	Reason string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("module: cannot enable %q: %s", e.Module, e.Reason)
}

// Activation is a resolved module graph.
type Activation struct {
	// Enabled lists modules with every dependency before its dependents. Basic is first.
	Enabled []Module
	Dropped []Module
	Themes  []Theme
}

// Names returns the enabled module names in activation order.
func (a *Activation) Names() []string {
	out := make([]string, len(a.Enabled))
	for i, m := range a.Enabled {
		out[i] = NameOf(m)
	}
	return out
}

type walker struct {
	drops   map[handle.Handle]Module
	scanned map[handle.Handle]bool
	active  map[handle.Handle]bool
	done    map[handle.Handle]bool
	path    []string
	act     Activation
}

// Activate resolves root and its transitive dependencies, with Basic enabled first.
// A module that is both required and dropped, a dependency cycle or a nil dependency
// fail with a *CompositionError and nothing is returned.
func Activate(root Module) (*Activation, error) {
	if root == nil {
		return nil, &CompositionError{Module: "<nil>", Reason: "no root module"}
	}
	w := &walker{
		drops:   map[handle.Handle]Module{},
		scanned: map[handle.Handle]bool{},
		active:  map[handle.Handle]bool{},
		done:    map[handle.Handle]bool{},
	}
	for _, m := range []Module{Basic, root} {
		if err := w.collectDrops(m); err != nil {
			return nil, err
		}
	}
	for _, m := range []Module{Basic, root} {
		if err := w.enable(m); err != nil {
			return nil, err
		}
	}
	return &w.act, nil
}

// MustActivate is Activate for program start up.
func MustActivate(root Module) *Activation {
	a, err := Activate(root)
	if err != nil {
		panic(err)
	}
	return a
}

func (w *walker) collectDrops(m Module) error {
	h := handle.OfValue(m)
	if w.scanned[h] {
		return nil
	}
	w.scanned[h] = true
	for _, d := range m.DropModules() {
		if d == nil {
			return &CompositionError{Module: NameOf(m), Reason: "nil module in drop list"}
		}
		dh := handle.OfValue(d)
		if _, ok := w.drops[dh]; !ok {
			w.drops[dh] = d
			w.act.Dropped = append(w.act.Dropped, d)
		}
	}
	for _, dep := range m.Dependencies() {
		if dep == nil {
			return &CompositionError{Module: NameOf(m), Reason: "nil dependency"}
		}
		if err := w.collectDrops(dep); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) enable(m Module) error {
	h := handle.OfValue(m)
	name := NameOf(m)
	if _, dropped := w.drops[h]; dropped {
		return &CompositionError{Module: name, Reason: "it is required and also dropped"}
	}
	if w.done[h] {
		return nil
	}
	if w.active[h] {
		return &CompositionError{
			Module: name,
			Reason: "dependency cycle " + strings.Join(append(w.path, name), " -> "),
		}
	}

	w.active[h] = true
	w.path = append(w.path, name)
	for _, dep := range m.Dependencies() {
		if err := w.enable(dep); err != nil {
			return err
		}
	}
	w.path = w.path[:len(w.path)-1]
	delete(w.active, h)

	w.done[h] = true
	w.act.Enabled = append(w.act.Enabled, m)
	if t := m.Theme(); t != nil && !w.hasTheme(t) {
		w.act.Themes = append(w.act.Themes, t)
	}
	return nil
}

func (w *walker) hasTheme(t Theme) bool {
	th := handle.OfValue(t)
	for _, x := range w.act.Themes {
		if handle.OfValue(x) == th {
			return true
		}
	}
	return false
}
