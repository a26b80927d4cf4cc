package bulmix

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	base "github.com/joeydtaylor/steeze-pages/pkg/base/component"
	"github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
	"github.com/joeydtaylor/steeze-pages/pkg/response/fatal"
	"github.com/joeydtaylor/steeze-pages/pkg/response/page"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

func themed() *component.Context {
	return component.NewContext(component.WithTheme(Bulmix))
}

func TestAltersStockComponents(t *testing.T) {
	cx := themed()
	h := base.NewHeading(base.H3, locale.Text("Hi"))
	assert.Equal(t, `<h3 class="title is-3">Hi</h3>`, string(component.Render(h, cx)))

	sub := base.NewHeading(base.H4, locale.Text("Sub")).WithDisplay(base.DisplaySubtitle)
	assert.Equal(t, `<h4 class="subtitle is-4">Sub</h4>`, string(component.Render(sub, cx)))

	p := base.NewParagraph(locale.Text("x"))
	assert.Equal(t, `<p class="block">x</p>`, string(component.Render(p, cx)))

	footer := base.NewFooter().Add(base.NewHtml("f"))
	assert.Contains(t, string(component.Render(footer, cx)), `<footer class="footer has-background-light">`)
}

func TestOverridesError404(t *testing.T) {
	out := string(component.Render(fatal.NewError404("/gone"), themed()))
	assert.Contains(t, out, `<section class="hero is-medium error-404">`)
	assert.Contains(t, out, "The page /gone does not exist.")
	assert.NotContains(t, out, "error-page")
}

func TestWideContainerTemplate(t *testing.T) {
	cx := themed()
	wide := base.NewSection().WithID("hero").WithTemplate("wide").Add(base.NewHtml("w"))
	assert.Equal(t, `<section id="hero" class="section"><div class="container is-fluid">w</div></section>`,
		string(component.Render(wide, cx)))

	plain := base.NewSection().WithID("hero").Add(base.NewHtml("w"))
	assert.Equal(t, `<section id="hero" class="section"><div class="container">w</div></section>`,
		string(component.Render(plain, cx)))

	assert.Empty(t, component.Render(base.NewSection().WithTemplate("wide"), cx))
}

func TestPageAddsStylesheets(t *testing.T) {
	p := page.New(themed()).AddIn("content", base.NewParagraph(locale.Text("body")))
	out := string(p.Render())
	assert.Contains(t, out, `<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bulma@0.9.4/css/bulma.min.css"><link rel="stylesheet" href="/bulmix/css/bulmix.css">`)
	assert.Contains(t, out, `<body class="body has-navbar-fixed-top">`)
}

func TestServesStaticFiles(t *testing.T) {
	r := httpx.NewChi()
	Bulmix.Configure(r)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bulmix/css/bulmix.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".region-container")
}

func TestIsAModuleTheme(t *testing.T) {
	act, err := module.Activate(Bulmix)
	require.NoError(t, err)
	assert.Equal(t, []string{"Basic", "Bulmix"}, act.Names())
	assert.Len(t, act.Themes, 2)
}
