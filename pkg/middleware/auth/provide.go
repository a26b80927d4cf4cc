package auth

import (
	"context"
	"crypto/rsa"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
)

// ProvideAuthentication builds the middleware from the [auth] section and installs it.
// A key that fails to load leaves assertion verification off until a refresh succeeds.
func ProvideAuthentication(s *config.Settings, log *zap.Logger) (*Middleware, error) {
	as := DefaultSettings()
	if err := s.Decode("auth", &as); err != nil {
		return nil, err
	}
	key, err := loadOptionalKey(as.AssertionKeyFile)
	if err != nil {
		log.Warn("assertion key not loaded", zap.Error(err), zap.String("path", as.AssertionKeyFile))
	}
	if as.DevBypass {
		log.Warn("auth dev bypass enabled")
	}
	m := New(as, key)
	Install(m)
	return m, nil
}

func loadOptionalKey(path string) (*rsa.PublicKey, error) {
	if path == "" {
		return nil, nil
	}
	return LoadKey(path)
}

// registerKeyRefresh fetches a remote assertion key on start and keeps it fresh until
// stop.
func registerKeyRefresh(lc fx.Lifecycle, m *Middleware, log *zap.Logger) {
	if m.keyURL == "" {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(start context.Context) error {
			if err := m.RefreshKey(start); err != nil {
				log.Warn("assertion key fetch failed", zap.Error(err), zap.String("url", m.keyURL))
			}
			go m.RunKeyRefresh(ctx, log)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

var Module = fx.Options(
	fx.Provide(ProvideAuthentication),
	fx.Invoke(registerKeyRefresh),
)
