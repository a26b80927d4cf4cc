package fatal

import (
	"github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
)

// Error404 is the body of the not found page. Themes usually override it.
type Error404 struct {
	component.Base
	path string
}

func NewError404(path string) *Error404 {
	e := &Error404{path: path}
	e.SetID("error-404")
	return e
}

func (e *Error404) Path() string { return e.path }

func (e *Error404) Message(lang string) html.Markup {
	return locale.E("not_found.message", L10n).WithArg("path", e.path).Escaped(lang)
}

func (e *Error404) PrepareComponent(cx *component.Context) html.Markup {
	lang := cx.Language()
	return html.Sprintf(`<div class="error-page error-404"><h1>%s</h1><p>%s</p><a href="/">%s</a></div>`,
		locale.E("not_found.title", L10n).Escaped(lang),
		e.Message(lang),
		locale.E("back_home", L10n).Escaped(lang),
	)
}

// Message is the body of the other error pages.
type Message struct {
	component.Base
	err Error
}

func NewMessage(err Error) *Message {
	m := &Message{err: err}
	m.SetID("error-message")
	return m
}

func (m *Message) Err() Error { return m.err }

func (m *Message) PrepareComponent(cx *component.Context) html.Markup {
	lang := cx.Language()
	return html.Sprintf(`<div class="error-page error-%d"><h1>%s</h1><p>%s</p></div>`,
		m.err.Status,
		locale.E(m.err.key+".title", L10n).Escaped(lang),
		locale.E(m.err.key+".message", L10n).Escaped(lang),
	)
}
