package serverfx

import (
	"errors"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

// ---------- Options ----------

type Config struct {
	Service      string // for logs only
	ConfigDirEnv string // e.g. APP_CONFIG_DIR
	ConfigDir    string // used when ConfigDirEnv is unset
}

type Option func(*Config)

func WithService(s string) Option      { return func(c *Config) { c.Service = s } }
func WithConfigDirEnv(k string) Option { return func(c *Config) { c.ConfigDirEnv = k } }
func WithConfigDir(dir string) Option  { return func(c *Config) { c.ConfigDir = dir } }

func defaultConfig() Config {
	return Config{
		Service:      "app",
		ConfigDirEnv: "APP_CONFIG_DIR",
		ConfigDir:    "config",
	}
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Module returns a complete Fx option set serving root; add app-specific fx.Invoke(...) alongside.
func Module(root module.Module, opts ...Option) fx.Option {
	cfg := NewConfig(opts...)
	return fx.Options(
		fx.Provide(func() Config { return cfg }),
		fx.Provide(func() module.Module { return root }),
		// Settings first: every middleware reads them
		fx.Provide(provideSettings),
		// Core middleware
		bundlefx.Module,
		// Router impl
		fx.Provide(httpx.NewChi),
		// Module graph
		fx.Provide(provideModules),
		// Router
		fx.Provide(fx.Annotate(provideRouter, fx.ResultTags(`name:"app"`))),
		// Lifecycle
		fx.Invoke(registerHooks),
	)
}

// Dir resolves the configuration directory.
func (c Config) Dir() string {
	return envOr(c.ConfigDirEnv, c.ConfigDir)
}

func provideSettings(cfg Config) (*config.Settings, error) {
	s, err := config.Load(cfg.Dir())
	if err != nil {
		return nil, err
	}
	config.Install(s)
	return s, nil
}

func provideModules(root module.Module, s *config.Settings, zl *zap.Logger) *module.Registry {
	reg, err := module.Bootstrap(root,
		module.WithTheme(s.App.Theme),
		module.WithLogger(zl),
	)
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		var ce *module.CompositionError
		if errors.As(err, &ce) {
			fields = append(fields, zap.String("module", ce.Module))
		}
		zl.Fatal("module bootstrap failed", fields...)
	}
	module.Install(reg)
	return reg
}

// ---------- tiny helpers ----------

func envOr(k, def string) string {
	if k == "" {
		return def
	}
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
