package locale

import (
	"maps"

	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

type op int

const (
	opNone op = iota
	opText
	opMarkup
	opTranslate
	opEscaped
)

// L10n is the text carried by a component: a literal, literal markup, or a key
// resolved against the request language. The zero value renders nothing.
type L10n struct {
	op      op
	value   string
	locales *Locales
	args    map[string]string
}

// Text is a literal string, escaped on output.
func Text(s string) L10n { return L10n{op: opText, value: s} }

// HTML is literal markup, emitted verbatim.
func HTML(m html.Markup) L10n { return L10n{op: opMarkup, value: string(m)} }

// T translates key and trusts the translation as markup.
func T(key string, l *Locales) L10n { return L10n{op: opTranslate, value: key, locales: l} }

// E translates key and escapes the translation.
func E(key string, l *Locales) L10n { return L10n{op: opEscaped, value: key, locales: l} }

// WithArg returns a copy of v with placeholder name bound to value.
func (v L10n) WithArg(name, value string) L10n {
	args := make(map[string]string, len(v.args)+1)
	maps.Copy(args, v.args)
	args[name] = value
	v.args = args
	return v
}

func (v L10n) IsEmpty() bool { return v.op == opNone }

// Using returns the plain string for lang.
func (v L10n) Using(lang string) string {
	switch v.op {
	case opTranslate, opEscaped:
		return v.locales.Translate(lang, v.value, v.args)
	default:
		return v.value
	}
}

// Escaped returns v for lang as markup.
func (v L10n) Escaped(lang string) html.Markup {
	switch v.op {
	case opMarkup, opTranslate:
		return html.Raw(v.Using(lang))
	case opText, opEscaped:
		return html.Escape(v.Using(lang))
	}
	return ""
}
