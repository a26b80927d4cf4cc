package page

import (
	"html/template"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

// TemplateRegions lists the body regions of each page template.
var TemplateRegions = map[string][]string{
	"default": {"content"},
	"admin":   {"top-menu", "side-menu", "content"},
}

var headTmpl = template.Must(template.New("head").Parse(`<head>` +
	`<meta charset="utf-8">` +
	`{{if .Title}}<title>{{.App}} | {{.Title}}</title>{{else}}<title>{{.App}}</title>{{end}}` +
	`{{with .Description}}<meta name="description" content="{{.}}">{{end}}` +
	`<meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">` +
	`{{range .Metadata}}<meta name="{{index . 0}}" content="{{index . 1}}">{{end}}` +
	`{{range .Properties}}<meta property="{{index . 0}}" content="{{index . 1}}">{{end}}` +
	`<meta http-equiv="X-UA-Compatible" content="IE=edge">` +
	`{{.Favicon}}{{.Assets}}` +
	`</head>`))

var bodyTmpl = template.Must(template.New("body").Parse(`<body{{with .Classes}} class="{{.}}"{{end}}>` +
	`{{range .Regions}}<div class="region-container region-{{.Name}}">{{.Markup}}</div>{{end}}` +
	`</body>`))

type region struct {
	Name   string
	Markup template.HTML
}

// DefaultHead renders the standard document head.
func DefaultHead(p *Page) html.Markup {
	return html.MustExecute(headTmpl, struct {
		App         string
		Title       string
		Description string
		Metadata    [][2]string
		Properties  [][2]string
		Favicon     template.HTML
		Assets      template.HTML
	}{
		App:         config.Current().App.Name,
		Title:       p.Title(),
		Description: p.Description(),
		Metadata:    p.metadata,
		Properties:  p.properties,
		Favicon:     p.cx.Favicon().Render().HTML(),
		Assets:      p.cx.RenderAssets().HTML(),
	})
}

// DefaultBody renders the regions of the page template, skipping empty ones.
func DefaultBody(p *Page) html.Markup {
	names, ok := TemplateRegions[p.template]
	if !ok {
		names = TemplateRegions["default"]
	}
	return RenderBody(p, names...)
}

// RenderBody renders the given regions in order inside <body>.
func RenderBody(p *Page, regions ...string) html.Markup {
	var out []region
	for _, name := range regions {
		if m := p.RenderRegion(name); !m.IsEmpty() {
			out = append(out, region{Name: name, Markup: m.HTML()})
		}
	}
	return html.MustExecute(bodyTmpl, struct {
		Classes string
		Regions []region
	}{p.bodyClasses.String(), out})
}
