package component

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/joeydtaylor/steeze-pages/pkg/core/action"
	"github.com/joeydtaylor/steeze-pages/pkg/core/handle"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

// Theme is the component level part of a theme.
type Theme interface {
	// BeforeRenderComponent may mutate c before the renderability gate.
	BeforeRenderComponent(c Component, cx *Context)
	// RenderComponent returns replacement markup for c and true, or false to fall back
	// to c's default renderer.
	RenderComponent(c Component, cx *Context) (html.Markup, bool)
}

// Context is the state of one render. It is owned by a single request and not safe for
// concurrent use.
type Context struct {
	ctx         context.Context
	req         *http.Request
	lang        string
	theme       Theme
	actions     *action.Registry
	stylesheets html.Assets[*html.StyleSheet]
	scripts     html.Assets[*html.JavaScript]
	favicon     *html.Favicon
	params      map[string]string
	ids         map[string]int
}

type ContextOption func(*Context)

func WithRequest(r *http.Request) ContextOption {
	return func(cx *Context) {
		cx.req = r
		if r != nil {
			cx.ctx = r.Context()
		}
	}
}

func WithLanguage(lang string) ContextOption { return func(cx *Context) { cx.lang = lang } }

func WithTheme(t Theme) ContextOption { return func(cx *Context) { cx.theme = t } }

// WithActions sets the registry dispatched during rendering. It should be frozen.
func WithActions(r *action.Registry) ContextOption { return func(cx *Context) { cx.actions = r } }

func NewContext(opts ...ContextOption) *Context {
	cx := &Context{
		ctx:    context.Background(),
		lang:   "en-US",
		params: map[string]string{},
		ids:    map[string]int{},
	}
	for _, o := range opts {
		o(cx)
	}
	return cx
}

func (cx *Context) Context() context.Context   { return cx.ctx }
func (cx *Context) Request() *http.Request     { return cx.req }
func (cx *Context) Language() string           { return cx.lang }
func (cx *Context) Theme() Theme               { return cx.theme }
func (cx *Context) Actions() *action.Registry  { return cx.actions }
func (cx *Context) Favicon() *html.Favicon     { return cx.favicon }
func (cx *Context) SetLanguage(lang string)    { cx.lang = lang }
func (cx *Context) SetFavicon(f *html.Favicon) { cx.favicon = f }

func (cx *Context) AddStyleSheet(s *html.StyleSheet) *Context {
	cx.stylesheets.Add(s)
	return cx
}

func (cx *Context) RemoveStyleSheet(path string) *Context {
	cx.stylesheets.Remove(path)
	return cx
}

func (cx *Context) AddJavaScript(j *html.JavaScript) *Context {
	cx.scripts.Add(j)
	return cx
}

func (cx *Context) RemoveJavaScript(path string) *Context {
	cx.scripts.Remove(path)
	return cx
}

// RenderAssets renders the collected stylesheets followed by the scripts.
func (cx *Context) RenderAssets() html.Markup {
	return html.Join(cx.stylesheets.Render(), cx.scripts.Render())
}

func (cx *Context) SetParam(key, value string) { cx.params[key] = value }

func (cx *Context) Param(key string) (string, bool) {
	v, ok := cx.params[key]
	return v, ok
}

// RequiredID returns c's id, or generates "<type>-<n>" unique within this context.
func (cx *Context) RequiredID(c Component) string {
	if id := c.ID(); id != "" {
		return id
	}
	prefix := strings.ToLower(handle.OfValue(c).String())
	cx.ids[prefix]++
	return fmt.Sprintf("%s-%d", prefix, cx.ids[prefix])
}
