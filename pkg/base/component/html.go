// Package component provides the stock components pages are assembled from.
package component

import (
	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
)

// Html renders fixed markup, or markup computed per request.
type Html struct {
	core.Base
	fn func(cx *core.Context) html.Markup
}

func NewHtml(m html.Markup) *Html {
	return &Html{fn: func(*core.Context) html.Markup { return m }}
}

func NewHtmlFunc(fn func(cx *core.Context) html.Markup) *Html { return &Html{fn: fn} }

func (h *Html) WithID(id string) *Html                  { h.SetID(id); return h }
func (h *Html) WithWeight(w int) *Html                  { h.SetWeight(w); return h }
func (h *Html) WithRenderable(fn core.Renderable) *Html { h.SetRenderable(fn); return h }

func (h *Html) PrepareComponent(cx *core.Context) html.Markup {
	if h.fn == nil {
		return ""
	}
	return h.fn(cx)
}

// Translate renders localized text in the request language.
type Translate struct {
	core.Base
	text locale.L10n
}

func NewTranslate(text locale.L10n) *Translate { return &Translate{text: text} }

func (t *Translate) WithWeight(w int) *Translate { t.SetWeight(w); return t }

func (t *Translate) PrepareComponent(cx *core.Context) html.Markup {
	return t.text.Escaped(cx.Language())
}
