// Package html holds the HTML-safe markup value shared by components, themes and pages,
// plus the small attribute and asset helpers components are built from.
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"slices"
	"strings"
)

// Markup is an HTML fragment that is safe to emit verbatim.
type Markup template.HTML

// Escape returns s with HTML special characters escaped.
func Escape(s string) Markup { return Markup(template.HTMLEscapeString(s)) }

// Raw trusts s as markup.
func Raw(s string) Markup { return Markup(s) }

// Sprintf formats with every string argument escaped.
func Sprintf(format string, args ...any) Markup {
	args = slices.Clone(args)
	for i, a := range args {
		switch v := a.(type) {
		case string:
			args[i] = template.HTMLEscapeString(v)
		case Markup:
			args[i] = string(v)
		}
	}
	return Markup(fmt.Sprintf(format, args...))
}

func (m Markup) String() string { return string(m) }

// HTML converts m for use as html/template data.
func (m Markup) HTML() template.HTML { return template.HTML(m) }

func (m Markup) IsEmpty() bool { return strings.TrimSpace(string(m)) == "" }

func Join(parts ...Markup) Markup {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(string(p))
	}
	return Markup(b.String())
}

// Execute renders t with data.
func Execute(t *template.Template, data any) (Markup, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("html: execute %s: %w", t.Name(), err)
	}
	return Markup(buf.String()), nil
}

// MustExecute is Execute for templates parsed at init time; a failure is a programming error.
func MustExecute(t *template.Template, data any) Markup {
	m, err := Execute(t, data)
	if err != nil {
		panic(err)
	}
	return m
}

// Attr renders ` name="value"`, or nothing when value is empty.
func Attr(name, value string) Markup {
	if value == "" {
		return ""
	}
	return Markup(" " + name + `="` + template.HTMLEscapeString(value) + `"`)
}

// BoolAttr renders the boolean attribute name when on.
func BoolAttr(name string, on bool) Markup {
	if !on {
		return ""
	}
	return Markup(" " + name)
}
