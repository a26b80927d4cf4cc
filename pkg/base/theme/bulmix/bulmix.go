// Package bulmix is a Bulma based theme.
package bulmix

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/response/page"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

const (
	bulmaCSS  = "https://cdn.jsdelivr.net/npm/bulma@0.9.4/css/bulma.min.css"
	themeCSS  = "/bulmix/css/bulmix.css"
	staticURL = "/bulmix"
)

//go:embed static
var static embed.FS

type bulmix struct{ module.ThemeBase }

// Bulmix is the theme module.
var Bulmix module.Theme = &bulmix{}

func (*bulmix) Name() string          { return "Bulmix" }
func (*bulmix) Description() string   { return "Bulma styled pages." }
func (b *bulmix) Theme() module.Theme { return b }

// Configure serves the theme's static files, from disk when [dev] static_files is set.
func (*bulmix) Configure(r httpx.Router) {
	var files http.FileSystem
	if dir := config.Current().Dev.StaticFiles; dir != "" {
		files = http.Dir(dir)
	} else {
		sub, err := fs.Sub(static, "static")
		if err != nil {
			panic(err)
		}
		files = http.FS(sub)
	}
	r.Mount(staticURL, http.StripPrefix(staticURL, http.FileServer(files)))
}

func (*bulmix) BeforePrepareBody(p *page.Page) {
	p.Context().
		AddStyleSheet(html.NewStyleSheet(bulmaCSS).WithWeight(-99)).
		AddStyleSheet(html.NewStyleSheet(themeCSS).WithWeight(-98))
	p.WithBodyClasses(html.AddClasses, "has-navbar-fixed-top")
}
