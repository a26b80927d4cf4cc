package bulmix

import (
	"fmt"

	base "github.com/joeydtaylor/steeze-pages/pkg/base/component"
	"github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
	"github.com/joeydtaylor/steeze-pages/pkg/response/fatal"
)

// BeforeRenderComponent maps the stock components onto Bulma classes.
func (*bulmix) BeforeRenderComponent(c component.Component, cx *component.Context) {
	switch v := c.(type) {
	case *base.Heading:
		if v.Display() == base.DisplaySubtitle {
			v.Classes().Alter(html.AddClasses, fmt.Sprintf("is-%d", v.Type()))
			return
		}
		v.Classes().Alter(html.PrependClasses, fmt.Sprintf("title is-%d", v.Type()))
	case *base.Paragraph:
		v.Classes().Alter(html.AddClasses, "block")
	case *base.Container:
		switch v.Type() {
		case base.Main, base.Section:
			v.Classes().Alter(html.AddClasses, "section")
		case base.Header:
			v.Classes().Alter(html.AddClasses, "hero")
		case base.Footer:
			v.Classes().Replace("footer", "footer has-background-light")
		}
	case *base.Menu:
		v.Classes().Alter(html.AddClasses, "menu-list")
	}
}

// RenderComponent replaces the not found body with a Bulma hero and renders
// containers using the "wide" template as fluid, full width containers.
func (*bulmix) RenderComponent(c component.Component, cx *component.Context) (html.Markup, bool) {
	switch v := c.(type) {
	case *fatal.Error404:
		return notFound(v, cx), true
	case *base.Container:
		if component.TemplateOf(v) != "wide" {
			return "", false
		}
		body := v.Children().Render(cx)
		if body.IsEmpty() {
			return "", true
		}
		tag := html.Raw(v.Type().Tag())
		return html.Sprintf(`<%s%s%s><div class="container is-fluid">%s</div></%s>`,
			tag, v.IDAttr(), v.Classes().Attr(), body, tag), true
	}
	return "", false
}

func notFound(e *fatal.Error404, cx *component.Context) html.Markup {
	lang := cx.Language()
	return html.Sprintf(`<section class="hero is-medium error-404"><div class="hero-body">`+
		`<p class="title">404</p><p class="subtitle">%s</p><a class="button is-link" href="/">%s</a>`+
		`</div></section>`,
		e.Message(lang),
		locale.E("back_home", fatal.L10n).Escaped(lang),
	)
}
