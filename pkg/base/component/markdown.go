package component

import (
	"io"
	"io/fs"

	"github.com/pkg/errors"

	bm "github.com/microcosm-cc/bluemonday"
	bf "github.com/russross/blackfriday"

	core "github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/html"
)

const markdownExtensions = bf.EXTENSION_TABLES |
	bf.EXTENSION_FENCED_CODE |
	bf.EXTENSION_AUTOLINK |
	bf.EXTENSION_STRIKETHROUGH |
	bf.EXTENSION_HEADER_IDS

// Markdown renders markdown source. Output is sanitized with the UGC policy unless the
// component is marked unsafe.
type Markdown struct {
	core.Base
	src    []byte
	unsafe bool
}

func NewMarkdown(src string) *Markdown { return &Markdown{src: []byte(src)} }

// LoadMarkdown reads the markdown file at path of fsys.
func LoadMarkdown(fsys fs.FS, path string) (*Markdown, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot open markdown file: %q", path)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read markdown file: %q", path)
	}
	return &Markdown{src: b}, nil
}

func (m *Markdown) WithID(id string) *Markdown { m.SetID(id); return m }
func (m *Markdown) WithWeight(w int) *Markdown { m.SetWeight(w); return m }

// Unsafe skips sanitizing, for trusted sources only.
func (m *Markdown) Unsafe() *Markdown { m.unsafe = true; return m }

func (m *Markdown) PrepareComponent(cx *core.Context) html.Markup {
	out := bf.Markdown(m.src, bf.HtmlRenderer(0, "", ""), markdownExtensions)
	if !m.unsafe {
		out = bm.UGCPolicy().SanitizeBytes(out)
	}
	return html.Sprintf(`<div%s class="markdown">%s</div>`, m.IDAttr(), html.Raw(string(out)))
}
