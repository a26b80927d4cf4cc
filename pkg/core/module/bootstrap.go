package module

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/core/action"
	"github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/core/handle"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

var ErrAlreadyConfigured = errors.New("module: routes already configured")

type options struct {
	theme string
	log   *zap.Logger
}

type Option func(*options)

// WithTheme selects the active theme by name, case insensitive.
func WithTheme(name string) Option { return func(o *options) { o.theme = name } }

func WithLogger(l *zap.Logger) Option { return func(o *options) { o.log = l } }

// Registry is the outcome of bootstrap. It is read only and safe for concurrent use.
type Registry struct {
	activation *Activation
	actions    *action.Registry
	theme      Theme
	configured atomic.Bool
}

// Bootstrap activates root, registers the actions of every enabled module into a fresh
// registry, freezes it, runs the Init hooks in activation order and picks the active
// theme: the named one, or the last enabled theme.
func Bootstrap(root Module, opts ...Option) (*Registry, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	act, err := Activate(root)
	if err != nil {
		return nil, err
	}
	for _, m := range act.Dropped {
		o.log.Debug("module dropped", zap.String("module", NameOf(m)))
	}

	actions := action.NewRegistry()
	for _, m := range act.Enabled {
		for _, a := range m.Actions() {
			actions.Add(a)
		}
		o.log.Debug("module enabled", zap.String("module", NameOf(m)), zap.Int("actions", len(m.Actions())))
	}
	actions.Freeze()

	for _, m := range act.Enabled {
		m.Init()
	}

	theme := act.Themes[len(act.Themes)-1]
	if o.theme != "" {
		if t, ok := findTheme(act.Themes, o.theme); ok {
			theme = t
		} else {
			o.log.Warn("configured theme is not enabled", zap.String("theme", o.theme), zap.String("using", NameOf(theme)))
		}
	}

	o.log.Info("modules bootstrapped",
		zap.Strings("enabled", act.Names()),
		zap.Int("themes", len(act.Themes)),
		zap.Int("dropped", len(act.Dropped)),
		zap.Int("actions", actions.Total()),
		zap.String("theme", NameOf(theme)),
	)
	return &Registry{activation: act, actions: actions, theme: theme}, nil
}

func findTheme(themes []Theme, name string) (Theme, bool) {
	for _, t := range themes {
		if strings.EqualFold(NameOf(t), name) {
			return t, true
		}
	}
	return nil, false
}

func (r *Registry) Enabled() []Module         { return append([]Module(nil), r.activation.Enabled...) }
func (r *Registry) Dropped() []Module         { return append([]Module(nil), r.activation.Dropped...) }
func (r *Registry) Themes() []Theme           { return append([]Theme(nil), r.activation.Themes...) }
func (r *Registry) Names() []string           { return r.activation.Names() }
func (r *Registry) Theme() Theme              { return r.theme }
func (r *Registry) Actions() *action.Registry { return r.actions }

// ThemeByName finds an enabled theme.
func (r *Registry) ThemeByName(name string) (Theme, bool) {
	return findTheme(r.activation.Themes, name)
}

// IsEnabled reports whether m is part of the activation.
func (r *Registry) IsEnabled(m Module) bool {
	h := handle.OfValue(m)
	for _, e := range r.activation.Enabled {
		if handle.OfValue(e) == h {
			return true
		}
	}
	return false
}

// Configure lets every enabled module register its routes, in activation order. It may
// only run once.
func (r *Registry) Configure(router httpx.Router) error {
	if !r.configured.CompareAndSwap(false, true) {
		return ErrAlreadyConfigured
	}
	for _, m := range r.activation.Enabled {
		m.Configure(router)
	}
	return nil
}

// NewContext returns a render context for req using the active theme and the frozen
// actions. The language is the configured default unless the request asks for another
// one with a well formed ?lang=, normalized the same way as app.language.
func (r *Registry) NewContext(req *http.Request) *component.Context {
	lang := config.Current().App.Language
	if req != nil {
		if q, ok := config.NormalizeLanguage(req.URL.Query().Get("lang")); ok {
			lang = q
		}
	}
	return component.NewContext(
		component.WithRequest(req),
		component.WithLanguage(lang),
		component.WithTheme(r.theme),
		component.WithActions(r.actions),
	)
}

var current atomic.Pointer[Registry]

// Install publishes r as the registry used by NewRenderContext.
func Install(r *Registry) { current.Store(r) }

// Current returns the installed registry, or nil before bootstrap.
func Current() *Registry { return current.Load() }

// NewRenderContext returns a render context from the installed registry. Before
// bootstrap it renders with Basic and no actions.
func NewRenderContext(req *http.Request) *component.Context {
	if r := Current(); r != nil {
		return r.NewContext(req)
	}
	fallback := &Registry{activation: &Activation{}, theme: Basic}
	return fallback.NewContext(req)
}
