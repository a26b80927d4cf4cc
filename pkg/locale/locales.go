// Package locale resolves localized strings by language id.
package locale

import (
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/joeydtaylor/steeze-pages/pkg/codec"
)

// Locales is a set of translation tables, one per language id. Tables are filled at
// startup and read concurrently afterwards.
type Locales struct {
	mu       sync.RWMutex
	fallback string
	tables   map[string]map[string]string
}

func New(fallback string) *Locales {
	return &Locales{fallback: fallback, tables: map[string]map[string]string{}}
}

// Add merges entries into the table for lang.
func (l *Locales) Add(lang string, entries map[string]string) *Locales {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.tables[lang]
	if !ok {
		t = make(map[string]string, len(entries))
		l.tables[lang] = t
	}
	for k, v := range entries {
		t[k] = v
	}
	return l
}

// Load reads every "<lang>.toml" and "<lang>.json" file in dir of fsys.
func Load(fsys fs.FS, dir, fallback string) (*Locales, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read locales dir: %q", dir)
	}
	l := New(fallback)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		c, ok := codec.ForFile(e.Name())
		if !ok {
			continue
		}
		p := path.Join(dir, e.Name())
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, errors.Wrapf(err, "Cannot open locale file: %q", p)
		}
		table := map[string]string{}
		if err := c.Unmarshal(b, &table); err != nil {
			return nil, errors.Wrapf(err, "Cannot parse locale file: %q", p)
		}
		l.Add(strings.TrimSuffix(e.Name(), path.Ext(e.Name())), table)
	}
	return l, nil
}

// MustLoad is Load for embedded locale files.
func MustLoad(fsys fs.FS, dir, fallback string) *Locales {
	l, err := Load(fsys, dir, fallback)
	if err != nil {
		panic(err)
	}
	return l
}

// Lookup resolves key trying lang, its base language, the fallback language and the
// fallback's base language, in that order. "{$name}" placeholders are replaced from args.
func (l *Locales) Lookup(lang, key string, args map[string]string) (string, bool) {
	if l == nil {
		return "", false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, candidate := range chain(lang, l.fallback) {
		if v, ok := l.tables[candidate][key]; ok {
			return substitute(v, args), true
		}
	}
	return "", false
}

// Translate is Lookup that falls back to the raw key.
func (l *Locales) Translate(lang, key string, args map[string]string) string {
	if v, ok := l.Lookup(lang, key, args); ok {
		return v
	}
	return key
}

// Languages returns the language ids with a table.
func (l *Locales) Languages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.tables))
	for k := range l.tables {
		out = append(out, k)
	}
	return out
}

func chain(lang, fallback string) []string {
	out := make([]string, 0, 4)
	add := func(s string) {
		if s == "" {
			return
		}
		for _, v := range out {
			if v == s {
				return
			}
		}
		out = append(out, s)
	}
	add(lang)
	add(Base(lang))
	add(fallback)
	add(Base(fallback))
	return out
}

// Base returns the primary language subtag: "es-ES" -> "es".
func Base(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		return lang[:i]
	}
	return lang
}

func substitute(s string, args map[string]string) string {
	if len(args) == 0 || !strings.Contains(s, "{$") {
		return s
	}
	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{$"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
