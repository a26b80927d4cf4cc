// Package module resolves the application's module graph and bootstraps the frozen
// registries served requests read from.
package module

import (
	"github.com/joeydtaylor/steeze-pages/pkg/core/action"
	"github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/core/handle"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/response/page"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

// Module is a unit of behavior. Modules are package level singletons, always pointers,
// identified by their type's handle.
type Module interface {
	// Name is the display name. Empty falls back to the type name, see NameOf.
	Name() string
	Description() string
	// Theme returns the theme the module provides, usually itself, or nil.
	Theme() Theme
	Dependencies() []Module
	// DropModules lists modules that must not be enabled.
	DropModules() []Module
	Actions() []action.Action
	// Init runs once after every module's actions are registered.
	Init()
	// Configure registers the module's routes.
	Configure(r httpx.Router)
}

// Theme is a module that renders pages and may intercept components.
type Theme interface {
	Module
	page.Theme
	component.Theme
}

// Base supplies no-op defaults. Embed it and override what the module needs.
type Base struct{}

func (Base) Name() string             { return "" }
func (Base) Description() string      { return "" }
func (Base) Theme() Theme             { return nil }
func (Base) Dependencies() []Module   { return nil }
func (Base) DropModules() []Module    { return nil }
func (Base) Actions() []action.Action { return nil }
func (Base) Init()                    {}
func (Base) Configure(r httpx.Router) {}

// ThemeBase supplies the default page and component rendering for themes.
type ThemeBase struct{ Base }

func (ThemeBase) BeforePrepareBody(p *page.Page)       {}
func (ThemeBase) PrepareBody(p *page.Page) html.Markup { return page.DefaultBody(p) }
func (ThemeBase) AfterPrepareBody(p *page.Page)        {}
func (ThemeBase) PrepareHead(p *page.Page) html.Markup { return page.DefaultHead(p) }

func (ThemeBase) BeforeRenderComponent(c component.Component, cx *component.Context) {}

func (ThemeBase) RenderComponent(c component.Component, cx *component.Context) (html.Markup, bool) {
	return "", false
}

// NameOf returns m's display name, or its type name.
func NameOf(m Module) string {
	if n := m.Name(); n != "" {
		return n
	}
	return handle.OfValue(m).String()
}
