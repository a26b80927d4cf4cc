package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeydtaylor/steeze-pages/pkg/core/action"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

type counter struct {
	Base
	label    string
	prepared int
	children Bundle
}

func newCounter(label string, weight int) *counter {
	c := &counter{label: label}
	c.SetWeight(weight)
	return c
}

func (c *counter) PrepareComponent(cx *Context) html.Markup {
	c.prepared++
	return html.Join(html.Escape(c.label), c.children.Render(cx))
}

type other struct{ Base }

func (o *other) PrepareComponent(*Context) html.Markup { return "other" }

type templated struct {
	counter
	template string
}

func (t *templated) Template() string { return t.template }

type stubTheme struct {
	before    int
	overrides map[string]html.Markup
	templates map[string]html.Markup
}

func (s *stubTheme) BeforeRenderComponent(c Component, cx *Context) { s.before++ }

func (s *stubTheme) RenderComponent(c Component, cx *Context) (html.Markup, bool) {
	if m, ok := s.overrides[c.ID()]; ok {
		return m, true
	}
	m, ok := s.templates[TemplateOf(c)]
	return m, ok
}

func TestNotRenderableIsEmptyAndSideEffectFree(t *testing.T) {
	theme := &stubTheme{overrides: map[string]html.Markup{"gate": "nope"}}
	r := action.NewRegistry()
	after := 0
	r.Add(NewAfterPrepare(func(*counter, *Context) { after++ }))
	r.Freeze()
	cx := NewContext(WithTheme(theme), WithActions(r))

	child := newCounter("child", 0)
	parent := newCounter("parent", 0)
	parent.SetID("gate")
	parent.children.Add(child)
	parent.SetRenderable(func(*Context) bool { return false })

	assert.Empty(t, Render(parent, cx))
	assert.Zero(t, parent.prepared)
	assert.Zero(t, child.prepared)
	assert.Zero(t, after)
	assert.Equal(t, 1, theme.before)
}

func TestThemeOverrideSkipsDefaultRenderer(t *testing.T) {
	theme := &stubTheme{overrides: map[string]html.Markup{"x": "<b>themed</b>"}}
	cx := NewContext(WithTheme(theme))

	c := newCounter("plain", 0)
	c.SetID("x")
	assert.Equal(t, html.Markup("<b>themed</b>"), Render(c, cx))
	assert.Zero(t, c.prepared)

	d := newCounter("plain", 0)
	assert.Equal(t, html.Markup("plain"), Render(d, cx))
	assert.Equal(t, 1, d.prepared)
}

func TestBundleRendersByWeightThenInsertion(t *testing.T) {
	b := NewBundle(newCounter("5", 5), newCounter("1a", 1), newCounter("1b", 1), newCounter("3", 3))
	out := b.Render(NewContext())
	assert.Equal(t, html.Markup("1a1b35"), out)
	// the bundle keeps insertion order
	first, ok := b.list[0].(*counter)
	require.True(t, ok)
	assert.Equal(t, "5", first.label)
}

func TestScopedActionsRunAroundPrepare(t *testing.T) {
	var trace []string
	r := action.NewRegistry()
	r.Add(NewBeforePrepare(func(c *counter, cx *Context) {
		trace = append(trace, "before:"+c.label)
		c.label = "mutated"
	}))
	r.Add(NewAfterPrepare(func(c *counter, cx *Context) {
		trace = append(trace, "after:"+c.label)
	}).WithWeight(1))
	r.Add(NewAfterPrepare(func(c *counter, cx *Context) {
		trace = append(trace, "after-first")
	}).WithWeight(-1))
	r.Add(NewBeforePrepare(func(o *other, cx *Context) {
		trace = append(trace, "other")
	}))
	r.Freeze()
	cx := NewContext(WithActions(r))

	assert.Equal(t, html.Markup("mutated"), Render(newCounter("orig", 0), cx))
	assert.Equal(t, []string{"before:orig", "after-first", "after:mutated"}, trace)
}

func TestRefererFilteredAction(t *testing.T) {
	hits := 0
	r := action.NewRegistry()
	r.Add(NewBeforePrepare(func(*counter, *Context) { hits++ }).FilterByReferer("admin-menu-test"))
	r.Freeze()
	cx := NewContext(WithActions(r))

	plain := newCounter("a", 0)
	plain.SetID("main-menu")
	Render(plain, cx)
	assert.Zero(t, hits)

	admin := newCounter("b", 0)
	admin.SetID("admin-menu-test")
	Render(admin, cx)
	assert.Equal(t, 1, hits)
}

func TestAsPanicsOnWrongType(t *testing.T) {
	var c Component = newCounter("x", 0)
	assert.NotPanics(t, func() { As[*counter](c) })
	assert.PanicsWithValue(t, "component: counter used as other", func() { As[*other](c) })
	assert.True(t, Is[*counter](c))
	assert.False(t, Is[*other](c))
}

func TestRequiredID(t *testing.T) {
	cx := NewContext()
	assert.Equal(t, "counter-1", cx.RequiredID(newCounter("", 0)))
	assert.Equal(t, "counter-2", cx.RequiredID(newCounter("", 0)))
	assert.Equal(t, "other-1", cx.RequiredID(&other{}))

	named := newCounter("", 0)
	named.SetID("fixed")
	assert.Equal(t, "fixed", cx.RequiredID(named))
}

func TestTemplateOf(t *testing.T) {
	assert.Equal(t, "default", TemplateOf(newCounter("", 0)))
}

func TestContextAssets(t *testing.T) {
	cx := NewContext(WithLanguage("es-ES"))
	cx.AddStyleSheet(html.NewStyleSheet("/a.css")).AddJavaScript(html.NewJavaScript("/a.js"))
	assert.Equal(t, "es-ES", cx.Language())
	assert.Equal(t, html.Markup(`<link rel="stylesheet" href="/a.css"><script src="/a.js" defer></script>`), cx.RenderAssets())
	cx.SetParam("k", "v")
	v, ok := cx.Param("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestThemeOverrideByTemplate(t *testing.T) {
	theme := &stubTheme{templates: map[string]html.Markup{"wide": "<div>wide</div>"}}
	cx := NewContext(WithTheme(theme))

	wide := &templated{counter: counter{label: "w"}, template: "wide"}
	assert.Equal(t, html.Markup("<div>wide</div>"), Render(wide, cx))
	assert.Zero(t, wide.prepared)

	narrow := &templated{counter: counter{label: "n"}, template: "narrow"}
	assert.Equal(t, html.Markup("n"), Render(narrow, cx))
	assert.Equal(t, 1, narrow.prepared)

	def := &templated{counter: counter{label: "d"}}
	assert.Equal(t, "default", TemplateOf(def))
	assert.Equal(t, html.Markup("d"), Render(def, cx))
	assert.Equal(t, 1, def.prepared)
}
