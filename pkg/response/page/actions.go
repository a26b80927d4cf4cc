package page

import "github.com/joeydtaylor/steeze-pages/pkg/core/action"

type beforePrepareBodyPoint struct{}
type afterPrepareBodyPoint struct{}

var (
	beforePrepareBodyKey = action.KeyOf[beforePrepareBodyPoint]()
	afterPrepareBodyKey  = action.KeyOf[afterPrepareBodyPoint]()
)

type pageAction interface {
	run(p *Page)
}

// BeforePrepareBody runs before the theme renders the body. Filters match against the
// page template name.
type BeforePrepareBody struct {
	action.Base
	fn func(*Page)
}

func NewBeforePrepareBody(fn func(p *Page)) *BeforePrepareBody {
	return &BeforePrepareBody{fn: fn}
}

func (a *BeforePrepareBody) Key() action.Key { return beforePrepareBodyKey }

func (a *BeforePrepareBody) WithWeight(w int) *BeforePrepareBody {
	a.SetWeight(w)
	return a
}

func (a *BeforePrepareBody) FilterByTemplate(name string) *BeforePrepareBody {
	a.SetReferer(name)
	return a
}

func (a *BeforePrepareBody) run(p *Page) {
	if a.fn != nil {
		a.fn(p)
	}
}

// AfterPrepareBody runs after the body is rendered, before the head.
type AfterPrepareBody struct {
	action.Base
	fn func(*Page)
}

func NewAfterPrepareBody(fn func(p *Page)) *AfterPrepareBody {
	return &AfterPrepareBody{fn: fn}
}

func (a *AfterPrepareBody) Key() action.Key { return afterPrepareBodyKey }

func (a *AfterPrepareBody) WithWeight(w int) *AfterPrepareBody {
	a.SetWeight(w)
	return a
}

func (a *AfterPrepareBody) FilterByTemplate(name string) *AfterPrepareBody {
	a.SetReferer(name)
	return a
}

func (a *AfterPrepareBody) run(p *Page) {
	if a.fn != nil {
		a.fn(p)
	}
}
