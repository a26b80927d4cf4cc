package page

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joeydtaylor/steeze-pages/pkg/core/action"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

var tracer = otel.Tracer("github.com/joeydtaylor/steeze-pages/pkg/response/page")

// Render builds the document: before-body actions and theme hook, body, after-body
// actions and theme hook, then the head, so components rendered in the body can still
// contribute assets to it.
func (p *Page) Render() html.Markup {
	_, span := tracer.Start(p.cx.Context(), "page.Render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("page.template", p.template),
			attribute.String("page.language", p.Language()),
		),
	)
	defer span.End()

	theme := p.theme()

	p.dispatch(beforePrepareBodyKey)
	theme.BeforePrepareBody(p)

	body := theme.PrepareBody(p)

	p.dispatch(afterPrepareBodyKey)
	theme.AfterPrepareBody(p)

	head := theme.PrepareHead(p)

	span.SetAttributes(attribute.Int("page.bytes", len(head)+len(body)))
	return html.Sprintf(`<!DOCTYPE html><html lang="%s" dir="%s">%s%s</html>`,
		p.Language(), p.direction, head, body)
}

// Respond writes the rendered page with its status code.
func (p *Page) Respond(w http.ResponseWriter) error {
	out := p.Render()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(p.status)
	_, err := w.Write([]byte(out))
	return err
}

func (p *Page) theme() Theme {
	t, ok := p.cx.Theme().(Theme)
	if !ok {
		panic(fmt.Sprintf("page: active theme %T does not render pages", p.cx.Theme()))
	}
	return t
}

func (p *Page) dispatch(k action.Key) {
	p.cx.Actions().Dispatch(k, p.template, func(a action.Action) {
		pa, ok := a.(pageAction)
		if !ok {
			panic(fmt.Sprintf("page: %T registered on %s is not a page action", a, k))
		}
		pa.run(p)
	})
}
