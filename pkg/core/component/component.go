// Package component implements the per-request render pipeline: renderability gate,
// scoped before/after hooks and theme override points over polymorphic components.
package component

import (
	"fmt"

	"github.com/joeydtaylor/steeze-pages/pkg/core/handle"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

// Component is a weighted, conditionally renderable render unit. Implementations are
// pointer types.
type Component interface {
	ID() string
	Weight() int
	IsRenderable(cx *Context) bool
	// PrepareComponent is the default renderer. Child bundles are rendered through
	// Bundle.Render so they go through the same pipeline.
	PrepareComponent(cx *Context) html.Markup
}

// Templated components expose a template name themes can key overrides on.
type Templated interface {
	Template() string
}

// Renderable decides from the request context whether a component is rendered.
type Renderable func(cx *Context) bool

// Base supplies id, weight and renderability. Embed it by value.
type Base struct {
	id         html.OptionID
	weight     int
	renderable Renderable
}

func (b *Base) ID() string  { return b.id.String() }
func (b *Base) Weight() int { return b.weight }

func (b *Base) IsRenderable(cx *Context) bool {
	return b.renderable == nil || b.renderable(cx)
}

func (b *Base) SetID(id string)             { b.id.Set(id) }
func (b *Base) SetWeight(w int)             { b.weight = w }
func (b *Base) SetRenderable(fn Renderable) { b.renderable = fn }

// IDAttr renders the id attribute, empty when the component has no id.
func (b *Base) IDAttr() html.Markup { return b.id.Attr() }

// TemplateOf returns c's template name, or "default".
func TemplateOf(c Component) string {
	if t, ok := c.(Templated); ok && t.Template() != "" {
		return t.Template()
	}
	return "default"
}

// As downcasts c to T. A wrong concrete type is a programming error and panics.
func As[T Component](c Component) T {
	t, ok := c.(T)
	if !ok {
		panic(fmt.Sprintf("component: %s used as %s", handle.OfValue(c), handle.Of[T]()))
	}
	return t
}

// Is reports whether c's concrete type is T.
func Is[T Component](c Component) bool {
	_, ok := c.(T)
	return ok
}
