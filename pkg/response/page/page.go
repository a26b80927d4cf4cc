// Package page assembles a full HTML document from regions of components.
package page

import (
	"net/http"
	"strings"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
)

// Theme is the page level part of a theme.
type Theme interface {
	BeforePrepareBody(p *Page)
	PrepareBody(p *Page) html.Markup
	AfterPrepareBody(p *Page)
	PrepareHead(p *Page) html.Markup
}

// Page is the response of one request. Not safe for concurrent use.
type Page struct {
	cx          *component.Context
	title       locale.L10n
	description locale.L10n
	direction   string
	metadata    [][2]string
	properties  [][2]string
	bodyClasses html.Classes
	template    string
	regions     map[string]*component.Bundle
	order       []string
	status      int
}

// New returns an empty page rendered with cx.
func New(cx *component.Context) *Page {
	return &Page{
		cx:          cx,
		direction:   config.Current().App.Direction,
		bodyClasses: html.NewClasses("body"),
		template:    "default",
		regions:     map[string]*component.Bundle{},
		status:      http.StatusOK,
	}
}

func (p *Page) WithTitle(t locale.L10n) *Page       { p.title = t; return p }
func (p *Page) WithDescription(d locale.L10n) *Page { p.description = d; return p }
func (p *Page) WithTemplate(name string) *Page      { p.template = name; return p }
func (p *Page) WithStatus(code int) *Page           { p.status = code; return p }

func (p *Page) WithLanguage(lang string) *Page {
	p.cx.SetLanguage(lang)
	return p
}

func (p *Page) WithDirection(dir string) *Page {
	p.direction = strings.ToLower(dir)
	return p
}

// WithMetadata adds <meta name content>.
func (p *Page) WithMetadata(name, content string) *Page {
	p.metadata = append(p.metadata, [2]string{name, content})
	return p
}

// WithProperty adds <meta property content>.
func (p *Page) WithProperty(property, content string) *Page {
	p.properties = append(p.properties, [2]string{property, content})
	return p
}

func (p *Page) WithFavicon(f *html.Favicon) *Page {
	p.cx.SetFavicon(f)
	return p
}

func (p *Page) WithBodyClasses(op html.ClassesOp, classes string) *Page {
	p.bodyClasses.Alter(op, classes)
	return p
}

// AddIn appends c to the named region.
func (p *Page) AddIn(region string, c component.Component) *Page {
	p.Region(region).Add(c)
	return p
}

func (p *Page) Context() *component.Context { return p.cx }
func (p *Page) Language() string            { return p.cx.Language() }
func (p *Page) Direction() string           { return p.direction }
func (p *Page) Template() string            { return p.template }
func (p *Page) Status() int                 { return p.status }
func (p *Page) Metadata() [][2]string       { return p.metadata }
func (p *Page) Properties() [][2]string     { return p.properties }
func (p *Page) BodyClasses() html.Classes   { return p.bodyClasses }

// Title returns the resolved title text.
func (p *Page) Title() string { return p.title.Using(p.Language()) }

func (p *Page) Description() string { return p.description.Using(p.Language()) }

// Region returns the bundle of the named region, creating it.
func (p *Page) Region(name string) *component.Bundle {
	b, ok := p.regions[name]
	if !ok {
		b = component.NewBundle()
		p.regions[name] = b
		p.order = append(p.order, name)
	}
	return b
}

// Regions lists region names in creation order.
func (p *Page) Regions() []string { return append([]string(nil), p.order...) }

// RenderRegion renders the named region through the component pipeline.
func (p *Page) RenderRegion(name string) html.Markup {
	b, ok := p.regions[name]
	if !ok {
		return ""
	}
	return b.Render(p.cx)
}
