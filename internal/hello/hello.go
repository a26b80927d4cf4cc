// Package hello is an example site: public greeting pages themed by Bulmix plus an
// administration area contributed by a second module.
package hello

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"

	base "github.com/joeydtaylor/steeze-pages/pkg/base/component"
	"github.com/joeydtaylor/steeze-pages/pkg/base/theme/bulmix"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
	"github.com/joeydtaylor/steeze-pages/pkg/response/fatal"
	"github.com/joeydtaylor/steeze-pages/pkg/response/page"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

//go:embed locales content
var files embed.FS

var L10n = locale.MustLoad(files, "locales", "en-US")

type helloName struct{ module.Base }

// HelloName is the root module of the example site.
var HelloName module.Module = &helloName{}

func (*helloName) Name() string        { return "HelloName" }
func (*helloName) Description() string { return "Greets visitors by name." }

func (*helloName) Dependencies() []module.Module {
	return []module.Module{bulmix.Bulmix, Admin}
}

func (*helloName) Configure(r httpx.Router) {
	r.Get("/", http.HandlerFunc(home))
	r.Get("/hello/{name}", http.HandlerFunc(greet))
	r.Get("/about", http.HandlerFunc(about))
}

func siteMenu() *base.Menu {
	return base.NewMenu().WithID("site-menu").
		Add(base.NewLink(locale.T("menu.home", L10n), "/")).
		Add(base.NewLink(locale.T("menu.about", L10n), "/about"))
}

func newPage(r *http.Request, title string) *page.Page {
	return page.New(module.NewRenderContext(r)).
		WithTitle(locale.T(title, L10n)).
		AddIn("content", base.NewHeader().Add(siteMenu()).WithWeight(-10))
}

func home(w http.ResponseWriter, r *http.Request) {
	p := newPage(r, "home.title").
		AddIn("content", base.NewSection().
			Add(base.NewHeading(base.H1, locale.T("home.title", L10n))).
			Add(base.NewParagraph(locale.E("home.intro", L10n))))
	_ = p.Respond(w)
}

func greet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		fatal.BadRequest.ServeHTTP(w, r)
		return
	}
	p := newPage(r, "hello.title").
		WithDescription(locale.E("hello.greeting", L10n).WithArg("name", name)).
		AddIn("content", base.NewSection().
			Add(base.NewHeading(base.H1, locale.E("hello.greeting", L10n).WithArg("name", name)).WithID("greeting")).
			Add(base.NewParagraph(locale.E("hello.intro", L10n))))
	_ = p.Respond(w)
}

func about(w http.ResponseWriter, r *http.Request) {
	md, err := base.LoadMarkdown(files, "content/about.md")
	if err != nil {
		fatal.Respond(w, r, err)
		return
	}
	_ = newPage(r, "about.title").
		AddIn("content", base.NewSection().Add(md)).
		Respond(w)
}
