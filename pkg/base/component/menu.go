package component

import (
	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
)

// Menu is a list of menu items. Menu ids are what admin style actions filter on.
type Menu struct {
	core.Base
	items   core.Bundle
	classes html.Classes
}

func NewMenu() *Menu { return &Menu{classes: html.NewClasses("menu")} }

func (m *Menu) WithID(id string) *Menu                  { m.SetID(id); return m }
func (m *Menu) WithWeight(w int) *Menu                  { m.SetWeight(w); return m }
func (m *Menu) WithRenderable(fn core.Renderable) *Menu { m.SetRenderable(fn); return m }

func (m *Menu) WithClasses(op html.ClassesOp, classes string) *Menu {
	m.classes.Alter(op, classes)
	return m
}

func (m *Menu) Add(item *MenuItem) *Menu {
	m.items.Add(item)
	return m
}

func (m *Menu) Items() *core.Bundle    { return &m.items }
func (m *Menu) Classes() *html.Classes { return &m.classes }

func (m *Menu) PrepareComponent(cx *core.Context) html.Markup {
	return html.Sprintf(`<ul%s%s>%s</ul>`, m.IDAttr(), m.classes.Attr(), m.items.Render(cx))
}

type MenuItemType int

const (
	ItemLabel MenuItemType = iota
	ItemLink
	ItemLinkBlank
	ItemHtml
	ItemSubmenu
)

type MenuItem struct {
	core.Base
	kind    MenuItemType
	label   locale.L10n
	path    string
	markup  html.Markup
	submenu *Menu
}

func NewLabel(label locale.L10n) *MenuItem { return &MenuItem{kind: ItemLabel, label: label} }

func NewLink(label locale.L10n, path string) *MenuItem {
	return &MenuItem{kind: ItemLink, label: label, path: path}
}

func NewLinkBlank(label locale.L10n, path string) *MenuItem {
	return &MenuItem{kind: ItemLinkBlank, label: label, path: path}
}

func NewMenuHtml(m html.Markup) *MenuItem { return &MenuItem{kind: ItemHtml, markup: m} }

func NewSubmenu(label locale.L10n, menu *Menu) *MenuItem {
	return &MenuItem{kind: ItemSubmenu, label: label, submenu: menu}
}

func (i *MenuItem) WithID(id string) *MenuItem                  { i.SetID(id); return i }
func (i *MenuItem) WithWeight(w int) *MenuItem                  { i.SetWeight(w); return i }
func (i *MenuItem) WithRenderable(fn core.Renderable) *MenuItem { i.SetRenderable(fn); return i }

func (i *MenuItem) Type() MenuItemType { return i.kind }
func (i *MenuItem) Path() string       { return i.path }

func (i *MenuItem) PrepareComponent(cx *core.Context) html.Markup {
	label := i.label.Escaped(cx.Language())
	var inner html.Markup
	switch i.kind {
	case ItemLabel:
		inner = html.Sprintf(`<span>%s</span>`, label)
	case ItemLink:
		inner = html.Sprintf(`<a href="%s">%s</a>`, i.path, label)
	case ItemLinkBlank:
		inner = html.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`, i.path, label)
	case ItemHtml:
		inner = i.markup
	case ItemSubmenu:
		inner = html.Sprintf(`<span>%s</span>`, label)
		if i.submenu != nil {
			inner = html.Join(inner, core.Render(i.submenu, cx))
		}
	}
	return html.Sprintf(`<li%s>%s</li>`, i.IDAttr(), inner)
}
