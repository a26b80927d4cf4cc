package component

import (
	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
)

// Block is a titled group of components, typically placed in a side region.
// A block with neither title nor content renders nothing.
type Block struct {
	core.Base
	title    locale.L10n
	classes  html.Classes
	template string
	children core.Bundle
}

func NewBlock(title locale.L10n) *Block {
	return &Block{title: title, classes: html.NewClasses("block")}
}

func (b *Block) WithID(id string) *Block                  { b.SetID(id); return b }
func (b *Block) WithWeight(w int) *Block                  { b.SetWeight(w); return b }
func (b *Block) WithRenderable(fn core.Renderable) *Block { b.SetRenderable(fn); return b }
func (b *Block) WithTemplate(name string) *Block          { b.template = name; return b }

func (b *Block) WithClasses(op html.ClassesOp, classes string) *Block {
	b.classes.Alter(op, classes)
	return b
}

func (b *Block) Add(child core.Component) *Block {
	b.children.Add(child)
	return b
}

func (b *Block) Title() locale.L10n     { return b.title }
func (b *Block) Template() string       { return b.template }
func (b *Block) Classes() *html.Classes { return &b.classes }
func (b *Block) Children() *core.Bundle { return &b.children }

func (b *Block) PrepareComponent(cx *core.Context) html.Markup {
	body := b.children.Render(cx)
	title := b.title.Escaped(cx.Language())
	if body.IsEmpty() && title.IsEmpty() {
		return ""
	}
	var heading html.Markup
	if !title.IsEmpty() {
		heading = html.Sprintf(`<h2 class="block-title">%s</h2>`, title)
	}
	return html.Sprintf(`<div%s%s>%s<div class="block-body">%s</div></div>`,
		b.IDAttr(), b.classes.Attr(), heading, body)
}
