package component

import (
	"fmt"

	"github.com/joeydtaylor/steeze-pages/pkg/core/action"
	"github.com/joeydtaylor/steeze-pages/pkg/core/handle"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

// Render runs c through the pipeline: before-prepare actions, the theme hook, the
// renderability gate, the theme override or c's own renderer, then after-prepare actions.
// A component that is not renderable yields empty markup and nothing after the gate runs.
func Render(c Component, cx *Context) html.Markup {
	scope := handle.OfValue(c)
	dispatch(beforePrepareKey.Scoped(scope), c, cx)

	theme := cx.Theme()
	if theme != nil {
		theme.BeforeRenderComponent(c, cx)
	}

	if !c.IsRenderable(cx) {
		renderedComponents.WithLabelValues("skipped").Inc()
		return ""
	}

	var (
		out        html.Markup
		overridden bool
	)
	if theme != nil {
		out, overridden = theme.RenderComponent(c, cx)
	}
	if overridden {
		renderedComponents.WithLabelValues("overridden").Inc()
	} else {
		out = c.PrepareComponent(cx)
		renderedComponents.WithLabelValues("default").Inc()
	}

	dispatch(afterPrepareKey.Scoped(scope), c, cx)
	return out
}

func dispatch(k action.Key, c Component, cx *Context) {
	cx.Actions().Dispatch(k, c.ID(), func(a action.Action) {
		r, ok := a.(runner)
		if !ok {
			panic(fmt.Sprintf("component: %T registered on %s is not a component action", a, k))
		}
		r.run(c, cx)
	})
}
