package hello

import (
	"net/http"

	base "github.com/joeydtaylor/steeze-pages/pkg/base/component"
	"github.com/joeydtaylor/steeze-pages/pkg/core/action"
	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
	"github.com/joeydtaylor/steeze-pages/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-pages/pkg/response/fatal"
	"github.com/joeydtaylor/steeze-pages/pkg/response/page"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

const adminRole = "admin"

type admin struct{ module.Base }

// Admin adds the /admin pages and extends the site menu for administrators.
var Admin module.Module = &admin{}

func (*admin) Name() string        { return "HelloAdmin" }
func (*admin) Description() string { return "Administration pages." }

func (*admin) Actions() []action.Action {
	return []action.Action{
		// Only the public site menu gets the admin link, and only admins see it.
		core.NewBeforePrepare(func(m *base.Menu, cx *core.Context) {
			m.Add(base.NewLink(locale.T("menu.admin", L10n), "/admin").
				WithWeight(100).
				WithRenderable(auth.Current().WithRole(adminRole)))
		}).FilterByReferer("site-menu"),

		core.NewBeforePrepare(func(m *base.Menu, cx *core.Context) {
			m.Add(base.NewLink(locale.T("admin.menu.dashboard", L10n), "/admin").WithWeight(-1))
		}).FilterByReferer("admin-menu"),

		page.NewBeforePrepareBody(func(p *page.Page) {
			p.WithMetadata("robots", "noindex").
				WithBodyClasses(html.AddClasses, "is-admin")
		}).FilterByTemplate("admin"),
	}
}

func (*admin) Configure(r httpx.Router) {
	r.Route("/admin", func(ar httpx.Router) {
		ar.Use(auth.Current().Require(adminRole, fatal.AccessDenied))
		ar.Get("/", http.HandlerFunc(dashboard))
	})
}

func dashboard(w http.ResponseWriter, r *http.Request) {
	user := auth.Current().GetUser(r.Context())
	_ = page.New(module.NewRenderContext(r)).
		WithTemplate("admin").
		WithTitle(locale.T("admin.title", L10n)).
		AddIn("top-menu", siteMenu()).
		AddIn("side-menu", base.NewMenu().WithID("admin-menu").
			Add(base.NewLink(locale.T("admin.menu.site", L10n), "/"))).
		AddIn("content", base.NewSection().
			Add(base.NewHeading(base.H1, locale.T("admin.title", L10n))).
			Add(base.NewParagraph(locale.E("admin.intro", L10n))).
			Add(base.NewParagraph(locale.E("footer.admin", L10n).WithArg("user", user.Username)))).
		Respond(w)
}
