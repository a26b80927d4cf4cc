package component

import (
	"github.com/joeydtaylor/steeze-pages/pkg/core/action"
	"github.com/joeydtaylor/steeze-pages/pkg/core/handle"
)

type beforePreparePoint struct{}
type afterPreparePoint struct{}

var (
	beforePrepareKey = action.KeyOf[beforePreparePoint]()
	afterPrepareKey  = action.KeyOf[afterPreparePoint]()
)

// runner is implemented by the actions dispatched by Render.
type runner interface {
	run(c Component, cx *Context)
}

// BeforePrepare runs before component C is checked for renderability. Filters match
// against the component id.
type BeforePrepare[C Component] struct {
	action.Base
	fn func(C, *Context)
}

func NewBeforePrepare[C Component](fn func(c C, cx *Context)) *BeforePrepare[C] {
	return &BeforePrepare[C]{fn: fn}
}

func (a *BeforePrepare[C]) Key() action.Key { return beforePrepareKey.Scoped(handle.Of[C]()) }

func (a *BeforePrepare[C]) WithWeight(w int) *BeforePrepare[C] {
	a.SetWeight(w)
	return a
}

func (a *BeforePrepare[C]) FilterByReferer(id string) *BeforePrepare[C] {
	a.SetReferer(id)
	return a
}

func (a *BeforePrepare[C]) run(c Component, cx *Context) {
	if a.fn != nil {
		a.fn(As[C](c), cx)
	}
}

// AfterPrepare runs once component C has been rendered.
type AfterPrepare[C Component] struct {
	action.Base
	fn func(C, *Context)
}

func NewAfterPrepare[C Component](fn func(c C, cx *Context)) *AfterPrepare[C] {
	return &AfterPrepare[C]{fn: fn}
}

func (a *AfterPrepare[C]) Key() action.Key { return afterPrepareKey.Scoped(handle.Of[C]()) }

func (a *AfterPrepare[C]) WithWeight(w int) *AfterPrepare[C] {
	a.SetWeight(w)
	return a
}

func (a *AfterPrepare[C]) FilterByReferer(id string) *AfterPrepare[C] {
	a.SetReferer(id)
	return a
}

func (a *AfterPrepare[C]) run(c Component, cx *Context) {
	if a.fn != nil {
		a.fn(As[C](c), cx)
	}
}
