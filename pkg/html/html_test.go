package html

import (
	"html/template"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeAndSprintf(t *testing.T) {
	assert.Equal(t, Markup("&lt;b&gt;"), Escape("<b>"))
	got := Sprintf(`<p title="%s">%s</p>`, `"x"`, Raw("<b>ok</b>"))
	assert.Equal(t, Markup(`<p title="&#34;x&#34;"><b>ok</b></p>`), got)
	assert.True(t, Markup("  \n").IsEmpty())
	assert.Equal(t, Markup("ab"), Join("a", "", "b"))
}

func TestMustExecute(t *testing.T) {
	tmpl := template.Must(template.New("t").Parse(`<i>{{.}}</i>`))
	assert.Equal(t, Markup("<i>&lt;x&gt;</i>"), MustExecute(tmpl, "<x>"))

	bad := template.Must(template.New("bad").Parse(`{{.Missing.Field}}`))
	_, err := Execute(bad, struct{}{})
	require.Error(t, err)
	assert.Panics(t, func() { MustExecute(bad, struct{}{}) })
}

func TestClassesOps(t *testing.T) {
	c := NewClasses("a b  a")
	assert.Equal(t, "a b", c.String())

	c.Alter(AddClasses, "c b")
	assert.Equal(t, "a b c", c.String())

	c.Alter(PrependClasses, "z a")
	assert.Equal(t, "z a b c", c.String())

	c.Alter(RemoveClasses, "a c")
	assert.Equal(t, "z b", c.String())

	c.Alter(ToggleClasses, "z y")
	assert.Equal(t, "b y", c.String())

	c.Replace("b", "title is-1")
	assert.Equal(t, "title is-1 y", c.String())

	c.Alter(SetClasses, "only")
	assert.Equal(t, Markup(` class="only"`), c.Attr())

	c.Alter(ClearClasses, "")
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Attr())
}

func TestOptionID(t *testing.T) {
	var id OptionID
	_, ok := id.Get()
	assert.False(t, ok)

	id.Set("  main  menu ")
	v, ok := id.Get()
	assert.True(t, ok)
	assert.Equal(t, "main_menu", v)
	assert.Equal(t, Markup(` id="main_menu"`), id.Attr())
}

func TestAssetsDedupAndWeight(t *testing.T) {
	var s Assets[*StyleSheet]
	assert.True(t, s.Add(NewStyleSheet("/b.css").WithWeight(5)))
	assert.True(t, s.Add(NewStyleSheet("/a.css").WithVersion("1.2")))
	assert.False(t, s.Add(NewStyleSheet("/b.css").WithWeight(-1)))
	assert.Equal(t, 2, s.Len())

	assert.Equal(t,
		Markup(`<link rel="stylesheet" href="/b.css"><link rel="stylesheet" href="/a.css?v=1.2">`),
		s.Render())

	s.Remove("/b.css")
	assert.Equal(t, 1, s.Len())

	var js Assets[*JavaScript]
	js.Add(NewJavaScript("/app.js?x=1").WithVersion("3").WithMode(ScriptAsync))
	assert.Equal(t, Markup(`<script src="/app.js?x=1&amp;v=3" async></script>`), js.Render())
}

func TestFavicon(t *testing.T) {
	var none *Favicon
	assert.Empty(t, none.Render())

	f := NewFavicon().WithIcon("/favicon.ico").WithThemeColor("#fff")
	assert.Equal(t, Markup(`<link rel="icon" href="/favicon.ico"><meta name="theme-color" content="#fff">`), f.Render())
}

func TestAssetsExtremeWeights(t *testing.T) {
	var s Assets[*StyleSheet]
	s.Add(NewStyleSheet("/max.css").WithWeight(math.MaxInt))
	s.Add(NewStyleSheet("/low.css").WithWeight(-2))
	s.Add(NewStyleSheet("/min.css").WithWeight(math.MinInt))

	assert.Equal(t,
		Markup(`<link rel="stylesheet" href="/min.css"><link rel="stylesheet" href="/low.css"><link rel="stylesheet" href="/max.css">`),
		s.Render())
}

func TestAttr(t *testing.T) {
	assert.Equal(t, Markup(` alt="a &#34;b&#34; &lt;c&gt;"`), Attr("alt", `a "b" <c>`))
	assert.Empty(t, Attr("alt", ""))
	assert.Equal(t, Markup(" required"), BoolAttr("required", true))
	assert.Empty(t, BoolAttr("required", false))
}
