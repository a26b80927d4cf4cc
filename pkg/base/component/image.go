package component

import (
	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
)

// Image renders an <img>. An image without a source renders nothing.
type Image struct {
	core.Base
	source  string
	alt     locale.L10n
	width   int
	height  int
	classes html.Classes
}

func NewImage(source string) *Image {
	return &Image{source: source, classes: html.NewClasses("img-fluid")}
}

func (i *Image) WithID(id string) *Image                  { i.SetID(id); return i }
func (i *Image) WithWeight(w int) *Image                  { i.SetWeight(w); return i }
func (i *Image) WithRenderable(fn core.Renderable) *Image { i.SetRenderable(fn); return i }
func (i *Image) WithAlt(alt locale.L10n) *Image           { i.alt = alt; return i }
func (i *Image) WithSize(width, height int) *Image        { i.width, i.height = width, height; return i }

func (i *Image) WithClasses(op html.ClassesOp, classes string) *Image {
	i.classes.Alter(op, classes)
	return i
}

func (i *Image) Source() string         { return i.source }
func (i *Image) Classes() *html.Classes { return &i.classes }

func (i *Image) PrepareComponent(cx *core.Context) html.Markup {
	if i.source == "" {
		return ""
	}
	// alt is always present, empty for decorative images
	return html.Join(
		"<img",
		i.IDAttr(),
		html.Attr("src", i.source),
		html.Sprintf(` alt="%s"`, i.alt.Using(cx.Language())),
		html.Attr("width", positive(i.width)),
		html.Attr("height", positive(i.height)),
		i.classes.Attr(),
		">",
	)
}
