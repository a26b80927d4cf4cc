package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
)

type serverDeps struct {
	fx.In
	Cfg      Config
	Settings *config.Settings
	Logger   *zap.Logger
	App      http.Handler `name:"app"`
}

// NewServer builds the http.Server for s. TLS is enabled only when both files exist.
func NewServer(s config.Server, h http.Handler) (*http.Server, bool) {
	srv := &http.Server{
		Addr:         s.Addr(),
		Handler:      h,
		ReadTimeout:  time.Duration(s.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(s.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(s.IdleTimeoutSec) * time.Second,
	}
	useTLS := fileExists(s.TLSCert) && fileExists(s.TLSKey)
	if useTLS {
		srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13}
	}
	return srv, useTLS
}

func registerHooks(lc fx.Lifecycle, d serverDeps) {
	srv, useTLS := NewServer(d.Settings.Server, d.App)
	cert, key := d.Settings.Server.TLSCert, d.Settings.Server.TLSKey

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", d.Cfg.Service),
					zap.String("addr", srv.Addr),
					zap.String("cert", cert),
				)
				go func() {
					if err := srv.ListenAndServeTLS(cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			} else {
				d.Logger.Info("server starting (PLAINTEXT)",
					zap.String("service", d.Cfg.Service),
					zap.String("addr", srv.Addr),
				)
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", d.Cfg.Service))
			return srv.Shutdown(ctx)
		},
	})
}
