package serverfx

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-pages/pkg/middleware/logger"
	hmetrics "github.com/joeydtaylor/steeze-pages/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-pages/pkg/response/fatal"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

// BuildDeps collects what BuildRouter wires. Auth, LogMW and Log are optional.
type BuildDeps struct {
	Auth    *auth.Middleware
	LogMW   *logger.Middleware
	Metrics http.Handler
	Modules *module.Registry
	Router  httpx.Router
	Log     *zap.Logger
	// Timeout bounds each request context when positive.
	Timeout time.Duration
}

// BuildRouter installs the middleware chain, the /metrics route and the routes of every
// enabled module. Unmatched paths render the themed not found page.
func BuildRouter(d BuildDeps) (http.Handler, error) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	r := d.Router
	r.Use(chimd.RequestID, recoverer(log), chimd.Heartbeat("/ping"))
	if d.Timeout > 0 {
		r.Use(withTimeout(d.Timeout))
	}

	if d.Auth != nil {
		r.Use(d.Auth.Handler())
		if d.LogMW != nil {
			r.Use(d.LogMW.Handler(d.Auth))
		}
		r.Use(hmetrics.Collect(d.Auth))
	} else if d.LogMW != nil {
		r.Use(d.LogMW.Handler(nil))
	}

	if d.Metrics != nil {
		r.Get("/metrics", d.Metrics)
	}
	if err := d.Modules.Configure(r); err != nil {
		return nil, err
	}
	r.NotFound(fatal.NotFound)
	return r.Mux(), nil
}

type routerDeps struct {
	fx.In

	Cfg      Config
	Settings *config.Settings
	AuthMW   *auth.Middleware
	LogMW    *logger.Middleware
	Metrics  http.Handler `name:"metrics"`
	Modules  *module.Registry
	R        httpx.Router
	Log      *zap.Logger
}

func provideRouter(d routerDeps) http.Handler {
	h, err := BuildRouter(BuildDeps{
		Auth:    d.AuthMW,
		LogMW:   d.LogMW,
		Metrics: d.Metrics,
		Modules: d.Modules,
		Router:  d.R,
		Log:     d.Log,
		Timeout: time.Duration(d.Settings.Server.RequestTimeoutSec) * time.Second,
	})
	if err != nil {
		d.Log.Fatal("router build failed", zap.Error(err), zap.String("service", d.Cfg.Service))
	}
	return h
}
