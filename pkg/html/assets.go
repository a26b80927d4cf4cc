package html

import (
	"cmp"
	"slices"
	"strings"
)

// Asset is something rendered into the page head once per source path.
type Asset interface {
	Source() string
	Weight() int
	Render() Markup
}

// Assets keeps one asset per source, rendered by ascending weight.
type Assets[A Asset] struct {
	list []A
}

// Add inserts a, replacing any asset with the same source. It reports whether a was new.
func (s *Assets[A]) Add(a A) bool {
	for i, cur := range s.list {
		if cur.Source() == a.Source() {
			s.list[i] = a
			return false
		}
	}
	s.list = append(s.list, a)
	return true
}

func (s *Assets[A]) Remove(source string) {
	s.list = slices.DeleteFunc(s.list, func(a A) bool { return a.Source() == source })
}

func (s *Assets[A]) Len() int { return len(s.list) }

func (s *Assets[A]) Render() Markup {
	sorted := slices.Clone(s.list)
	slices.SortStableFunc(sorted, func(a, b A) int { return cmp.Compare(a.Weight(), b.Weight()) })
	parts := make([]Markup, 0, len(sorted))
	for _, a := range sorted {
		parts = append(parts, a.Render())
	}
	return Join(parts...)
}

type StyleSheet struct {
	path    string
	version string
	media   string
	weight  int
}

func NewStyleSheet(path string) *StyleSheet { return &StyleSheet{path: path} }

func (s *StyleSheet) WithVersion(v string) *StyleSheet { s.version = v; return s }
func (s *StyleSheet) WithWeight(w int) *StyleSheet     { s.weight = w; return s }
func (s *StyleSheet) ForMedia(m string) *StyleSheet    { s.media = m; return s }

func (s *StyleSheet) Source() string { return s.path }
func (s *StyleSheet) Weight() int    { return s.weight }

func (s *StyleSheet) Render() Markup {
	var media Markup
	if s.media != "" {
		media = Sprintf(` media="%s"`, s.media)
	}
	return Sprintf(`<link rel="stylesheet" href="%s"%s>`, versioned(s.path, s.version), media)
}

type ScriptMode int

const (
	ScriptNormal ScriptMode = iota
	ScriptAsync
	ScriptDefer
)

type JavaScript struct {
	path    string
	version string
	weight  int
	mode    ScriptMode
}

func NewJavaScript(path string) *JavaScript { return &JavaScript{path: path, mode: ScriptDefer} }

func (j *JavaScript) WithVersion(v string) *JavaScript  { j.version = v; return j }
func (j *JavaScript) WithWeight(w int) *JavaScript      { j.weight = w; return j }
func (j *JavaScript) WithMode(m ScriptMode) *JavaScript { j.mode = m; return j }

func (j *JavaScript) Source() string { return j.path }
func (j *JavaScript) Weight() int    { return j.weight }

func (j *JavaScript) Render() Markup {
	var mode string
	switch j.mode {
	case ScriptAsync:
		mode = " async"
	case ScriptDefer:
		mode = " defer"
	}
	return Sprintf(`<script src="%s"%s></script>`, versioned(j.path, j.version), Raw(mode))
}

func versioned(path, version string) string {
	if version == "" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "v=" + version
}
