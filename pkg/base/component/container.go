package component

import (
	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

type ContainerType int

const (
	Wrapper ContainerType = iota
	Header
	Footer
	Main
	Section
)

var containerTags = map[ContainerType]string{
	Wrapper: "div",
	Header:  "header",
	Footer:  "footer",
	Main:    "main",
	Section: "section",
}

// Tag is the element name the container kind renders as.
func (t ContainerType) Tag() string { return containerTags[t] }

// Container groups child components inside a semantic element. An empty container
// renders nothing.
type Container struct {
	core.Base
	kind     ContainerType
	classes  html.Classes
	inner    html.Classes
	template string
	children core.Bundle
}

func NewContainer() *Container { return newContainer(Wrapper, "container") }
func NewHeader() *Container    { return newContainer(Header, "header") }
func NewFooter() *Container    { return newContainer(Footer, "footer") }
func NewMain() *Container      { return newContainer(Main, "main") }
func NewSection() *Container   { return newContainer(Section, "section") }

func newContainer(kind ContainerType, class string) *Container {
	return &Container{kind: kind, classes: html.NewClasses(class), inner: html.NewClasses("container")}
}

func (c *Container) WithID(id string) *Container                  { c.SetID(id); return c }
func (c *Container) WithWeight(w int) *Container                  { c.SetWeight(w); return c }
func (c *Container) WithRenderable(fn core.Renderable) *Container { c.SetRenderable(fn); return c }
func (c *Container) WithTemplate(name string) *Container          { c.template = name; return c }

func (c *Container) WithClasses(op html.ClassesOp, classes string) *Container {
	c.classes.Alter(op, classes)
	return c
}

func (c *Container) WithInnerClasses(op html.ClassesOp, classes string) *Container {
	c.inner.Alter(op, classes)
	return c
}

// Add appends a child.
func (c *Container) Add(child core.Component) *Container {
	c.children.Add(child)
	return c
}

func (c *Container) Type() ContainerType    { return c.kind }
func (c *Container) Template() string       { return c.template }
func (c *Container) Classes() *html.Classes { return &c.classes }
func (c *Container) Children() *core.Bundle { return &c.children }

func (c *Container) PrepareComponent(cx *core.Context) html.Markup {
	body := c.children.Render(cx)
	if body.IsEmpty() {
		return ""
	}
	tag := c.kind.Tag()
	if c.kind == Wrapper {
		return html.Sprintf(`<div%s%s>%s</div>`, c.IDAttr(), c.classes.Attr(), body)
	}
	return html.Sprintf(`<%s%s%s><div%s>%s</div></%s>`,
		html.Raw(tag), c.IDAttr(), c.classes.Attr(), c.inner.Attr(), body, html.Raw(tag))
}
