package component

import (
	"fmt"

	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
)

type Paragraph struct {
	core.Base
	text    locale.L10n
	classes html.Classes
}

func NewParagraph(text locale.L10n) *Paragraph { return &Paragraph{text: text} }

func (p *Paragraph) WithID(id string) *Paragraph                  { p.SetID(id); return p }
func (p *Paragraph) WithWeight(w int) *Paragraph                  { p.SetWeight(w); return p }
func (p *Paragraph) WithRenderable(fn core.Renderable) *Paragraph { p.SetRenderable(fn); return p }

func (p *Paragraph) WithClasses(op html.ClassesOp, classes string) *Paragraph {
	p.classes.Alter(op, classes)
	return p
}

func (p *Paragraph) Classes() *html.Classes { return &p.classes }

func (p *Paragraph) PrepareComponent(cx *core.Context) html.Markup {
	return html.Sprintf(`<p%s%s>%s</p>`, p.IDAttr(), p.classes.Attr(), p.text.Escaped(cx.Language()))
}

type HeadingType int

const (
	H1 HeadingType = iota + 1
	H2
	H3
	H4
	H5
	H6
)

type HeadingDisplay int

const (
	DisplayNormal HeadingDisplay = iota
	DisplayXxLarge
	DisplayLarge
	DisplayMedium
	DisplaySmall
	DisplayXxSmall
	DisplaySubtitle
)

var displayClasses = map[HeadingDisplay]string{
	DisplayXxLarge:  "display-1",
	DisplayLarge:    "display-2",
	DisplayMedium:   "display-3",
	DisplaySmall:    "display-4",
	DisplayXxSmall:  "display-5",
	DisplaySubtitle: "subtitle",
}

type Heading struct {
	core.Base
	kind    HeadingType
	display HeadingDisplay
	text    locale.L10n
	classes html.Classes
}

func NewHeading(kind HeadingType, text locale.L10n) *Heading {
	if kind < H1 || kind > H6 {
		kind = H1
	}
	return &Heading{kind: kind, text: text}
}

func (h *Heading) WithID(id string) *Heading { h.SetID(id); return h }
func (h *Heading) WithWeight(w int) *Heading { h.SetWeight(w); return h }

func (h *Heading) WithDisplay(d HeadingDisplay) *Heading {
	if cls, ok := displayClasses[h.display]; ok {
		h.classes.Alter(html.RemoveClasses, cls)
	}
	h.display = d
	if cls, ok := displayClasses[d]; ok {
		h.classes.Alter(html.AddClasses, cls)
	}
	return h
}

func (h *Heading) WithClasses(op html.ClassesOp, classes string) *Heading {
	h.classes.Alter(op, classes)
	return h
}

func (h *Heading) Type() HeadingType       { return h.kind }
func (h *Heading) Display() HeadingDisplay { return h.display }
func (h *Heading) Classes() *html.Classes  { return &h.classes }

func (h *Heading) PrepareComponent(cx *core.Context) html.Markup {
	tag := html.Raw(fmt.Sprintf("h%d", h.kind))
	return html.Sprintf(`<%s%s%s>%s</%s>`, tag, h.IDAttr(), h.classes.Attr(), h.text.Escaped(cx.Language()), tag)
}
