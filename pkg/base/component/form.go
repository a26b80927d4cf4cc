package component

import (
	"strconv"

	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
)

type FormMethod int

const (
	FormPost FormMethod = iota
	FormGet
)

// Form is a bundle of form elements submitted to an action.
type Form struct {
	core.Base
	action   string
	method   FormMethod
	charset  string
	classes  html.Classes
	template string
	elements core.Bundle
}

func NewForm() *Form {
	return &Form{charset: "UTF-8", classes: html.NewClasses("form")}
}

func (f *Form) WithID(id string) *Form                  { f.SetID(id); return f }
func (f *Form) WithWeight(w int) *Form                  { f.SetWeight(w); return f }
func (f *Form) WithRenderable(fn core.Renderable) *Form { f.SetRenderable(fn); return f }
func (f *Form) WithAction(action string) *Form          { f.action = action; return f }
func (f *Form) WithMethod(m FormMethod) *Form           { f.method = m; return f }
func (f *Form) WithCharset(charset string) *Form        { f.charset = charset; return f }
func (f *Form) WithTemplate(name string) *Form          { f.template = name; return f }

func (f *Form) WithClasses(op html.ClassesOp, classes string) *Form {
	f.classes.Alter(op, classes)
	return f
}

// Add appends an element.
func (f *Form) Add(element core.Component) *Form {
	f.elements.Add(element)
	return f
}

func (f *Form) Action() string         { return f.action }
func (f *Form) Method() FormMethod     { return f.method }
func (f *Form) Template() string       { return f.template }
func (f *Form) Classes() *html.Classes { return &f.classes }
func (f *Form) Elements() *core.Bundle { return &f.elements }

func (f *Form) PrepareComponent(cx *core.Context) html.Markup {
	method := "post"
	if f.method == FormGet {
		method = "get"
	}
	return html.Sprintf(`<form%s%s method="%s"%s%s>%s</form>`,
		f.IDAttr(), html.Attr("action", f.action), method, html.Attr("accept-charset", f.charset),
		f.classes.Attr(), f.elements.Render(cx))
}

type InputType int

const (
	InputText InputType = iota
	InputPassword
	InputSearch
	InputEmail
	InputTelephone
	InputURL
)

var inputTypes = map[InputType]string{
	InputText:      "text",
	InputPassword:  "password",
	InputSearch:    "search",
	InputEmail:     "email",
	InputTelephone: "tel",
	InputURL:       "url",
}

// Input is a labelled single line form field.
type Input struct {
	core.Base
	kind         InputType
	name         html.OptionID
	value        string
	label        locale.L10n
	help         locale.L10n
	placeholder  string
	autocomplete string
	size         int
	minLength    int
	maxLength    int
	autofocus    bool
	readonly     bool
	required     bool
	disabled     bool
	classes      html.Classes
}

func NewTextfield() *Input { return newInput(InputText) }
func NewPassword() *Input  { return newInput(InputPassword) }
func NewSearch() *Input    { return newInput(InputSearch) }
func NewEmail() *Input     { return newInput(InputEmail) }
func NewTelephone() *Input { return newInput(InputTelephone) }
func NewURL() *Input       { return newInput(InputURL) }

func newInput(kind InputType) *Input {
	return &Input{kind: kind, classes: html.NewClasses("form-item form-type-" + inputTypes[kind])}
}

func (i *Input) WithID(id string) *Input                  { i.SetID(id); return i }
func (i *Input) WithWeight(w int) *Input                  { i.SetWeight(w); return i }
func (i *Input) WithRenderable(fn core.Renderable) *Input { i.SetRenderable(fn); return i }
func (i *Input) WithName(name string) *Input              { i.name.Set(name); return i }
func (i *Input) WithValue(value string) *Input            { i.value = value; return i }
func (i *Input) WithLabel(label locale.L10n) *Input       { i.label = label; return i }
func (i *Input) WithHelpText(help locale.L10n) *Input     { i.help = help; return i }
func (i *Input) WithPlaceholder(p string) *Input          { i.placeholder = p; return i }
func (i *Input) WithAutocomplete(a string) *Input         { i.autocomplete = a; return i }
func (i *Input) WithSize(n int) *Input                    { i.size = n; return i }
func (i *Input) WithLength(lo, hi int) *Input             { i.minLength, i.maxLength = lo, hi; return i }
func (i *Input) Autofocus() *Input                        { i.autofocus = true; return i }
func (i *Input) Readonly() *Input                         { i.readonly = true; return i }
func (i *Input) Required() *Input                         { i.required = true; return i }
func (i *Input) Disabled() *Input                         { i.disabled = true; return i }

func (i *Input) WithClasses(op html.ClassesOp, classes string) *Input {
	i.classes.Alter(op, classes)
	return i
}

func (i *Input) Type() InputType        { return i.kind }
func (i *Input) Name() string           { return i.name.String() }
func (i *Input) Classes() *html.Classes { return &i.classes }

func (i *Input) PrepareComponent(cx *core.Context) html.Markup {
	lang := cx.Language()
	id := ""
	if name, ok := i.name.Get(); ok {
		id = "edit-" + name
	}

	var label html.Markup
	if !i.label.IsEmpty() {
		var req html.Markup
		if i.required {
			req = ` <span class="form-required" title="This field is required.">*</span>`
		}
		label = html.Sprintf(`<label class="form-label"%s>%s%s</label>`,
			html.Attr("for", id), i.label.Escaped(lang), req)
	}

	input := html.Join(
		html.Sprintf(`<input type="%s"`, inputTypes[i.kind]),
		html.Attr("id", id),
		` class="form-control"`,
		html.Attr("name", i.name.String()),
		html.Attr("value", i.value),
		html.Attr("size", positive(i.size)),
		html.Attr("minlength", positive(i.minLength)),
		html.Attr("maxlength", positive(i.maxLength)),
		html.Attr("placeholder", i.placeholder),
		html.Attr("autocomplete", i.autocomplete),
		html.BoolAttr("autofocus", i.autofocus),
		html.BoolAttr("readonly", i.readonly),
		html.BoolAttr("required", i.required),
		html.BoolAttr("disabled", i.disabled),
		">",
	)

	var help html.Markup
	if !i.help.IsEmpty() {
		help = html.Sprintf(`<div class="form-text">%s</div>`, i.help.Escaped(lang))
	}
	return html.Sprintf(`<div%s%s>%s%s%s</div>`, i.IDAttr(), i.classes.Attr(), label, input, help)
}

func positive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

type ButtonType int

const (
	ButtonPlain ButtonType = iota
	ButtonSubmit
	ButtonReset
)

var buttonTypes = map[ButtonType]string{
	ButtonPlain:  "button",
	ButtonSubmit: "submit",
	ButtonReset:  "reset",
}

// Button is a form button whose value is also its caption.
type Button struct {
	core.Base
	kind      ButtonType
	name      html.OptionID
	value     locale.L10n
	autofocus bool
	disabled  bool
	classes   html.Classes
}

func NewButton(value locale.L10n) *Button { return newButton(ButtonPlain, value) }
func NewSubmit(value locale.L10n) *Button { return newButton(ButtonSubmit, value) }
func NewReset(value locale.L10n) *Button  { return newButton(ButtonReset, value) }

func newButton(kind ButtonType, value locale.L10n) *Button {
	return &Button{kind: kind, value: value, classes: html.NewClasses("form-button form-" + buttonTypes[kind])}
}

func (b *Button) WithID(id string) *Button                  { b.SetID(id); return b }
func (b *Button) WithWeight(w int) *Button                  { b.SetWeight(w); return b }
func (b *Button) WithRenderable(fn core.Renderable) *Button { b.SetRenderable(fn); return b }
func (b *Button) WithName(name string) *Button              { b.name.Set(name); return b }
func (b *Button) Autofocus() *Button                        { b.autofocus = true; return b }
func (b *Button) Disabled() *Button                         { b.disabled = true; return b }

func (b *Button) WithClasses(op html.ClassesOp, classes string) *Button {
	b.classes.Alter(op, classes)
	return b
}

func (b *Button) Type() ButtonType       { return b.kind }
func (b *Button) Classes() *html.Classes { return &b.classes }

func (b *Button) PrepareComponent(cx *core.Context) html.Markup {
	lang := cx.Language()
	id := ""
	if name, ok := b.name.Get(); ok {
		id = "edit-" + name
	}
	return html.Join(
		html.Sprintf(`<button type="%s"`, buttonTypes[b.kind]),
		html.Attr("id", id),
		b.classes.Attr(),
		html.Attr("name", b.name.String()),
		html.Attr("value", b.value.Using(lang)),
		html.BoolAttr("autofocus", b.autofocus),
		html.BoolAttr("disabled", b.disabled),
		">",
		b.value.Escaped(lang),
		"</button>",
	)
}

// Hidden carries a value the user does not edit.
type Hidden struct {
	core.Base
	name  html.OptionID
	value string
}

func NewHidden(name, value string) *Hidden {
	h := &Hidden{value: value}
	h.name.Set(name)
	return h
}

func (h *Hidden) WithWeight(w int) *Hidden { h.SetWeight(w); return h }

func (h *Hidden) Name() string  { return h.name.String() }
func (h *Hidden) Value() string { return h.value }

func (h *Hidden) PrepareComponent(*core.Context) html.Markup {
	id := ""
	if name, ok := h.name.Get(); ok {
		id = "value-" + name
	}
	return html.Join(`<input type="hidden"`, html.Attr("id", id),
		html.Attr("name", h.name.String()), html.Attr("value", h.value), ">")
}
