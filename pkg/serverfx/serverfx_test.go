package serverfx

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-pages/pkg/transport/httpx"
)

type site struct{ module.Base }

func (site) Name() string { return "Site" }

func (site) Configure(r httpx.Router) {
	r.Get("/hello", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))
	r.Get("/boom", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	r.Get("/partial", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("late")
	}))
}

func build(t *testing.T) http.Handler {
	t.Helper()
	reg, err := module.Bootstrap(site{})
	require.NoError(t, err)
	h, err := BuildRouter(BuildDeps{
		Auth:    auth.New(auth.DefaultSettings(), nil),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("# metrics")) }),
		Modules: reg,
		Router:  httpx.NewChi(),
	})
	require.NoError(t, err)
	return h
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestBuildRouterRoutes(t *testing.T) {
	h := build(t)

	rec := get(h, "/hello")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())

	rec = get(h, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(h, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestBuildRouterNotFoundPage(t *testing.T) {
	rec := get(build(t), "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestBuildRouterRecoversPanics(t *testing.T) {
	rec := get(build(t), "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")

	rec = get(build(t), "/partial")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestBuildRouterConfiguresOnce(t *testing.T) {
	reg, err := module.Bootstrap(site{})
	require.NoError(t, err)

	_, err = BuildRouter(BuildDeps{Modules: reg, Router: httpx.NewChi()})
	require.NoError(t, err)
	_, err = BuildRouter(BuildDeps{Modules: reg, Router: httpx.NewChi()})
	assert.ErrorIs(t, err, module.ErrAlreadyConfigured)
}

func TestNewServer(t *testing.T) {
	s := config.Defaults().Server
	srv, useTLS := NewServer(s, http.NotFoundHandler())
	assert.False(t, useTLS)
	assert.Nil(t, srv.TLSConfig)
	assert.Equal(t, "localhost:8088", srv.Addr)
	assert.Equal(t, "15s", srv.ReadTimeout.String())

	dir := t.TempDir()
	s.TLSCert = filepath.Join(dir, "cert.pem")
	s.TLSKey = filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(s.TLSCert, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(s.TLSKey, []byte("x"), 0o600))
	srv, useTLS = NewServer(s, http.NotFoundHandler())
	assert.True(t, useTLS)
	require.NotNil(t, srv.TLSConfig)
}

func TestProvideSettingsFromEnvDir(t *testing.T) {
	t.Cleanup(func() { config.Install(config.Defaults()) })
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "common.toml"), []byte("[app]\nname = \"Env Site\"\n"), 0o600))
	t.Setenv("SITE_CONFIG", dir)

	cfg := NewConfig(WithService("site"), WithConfigDirEnv("SITE_CONFIG"), WithConfigDir("nowhere"))
	s, err := provideSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Env Site", s.App.Name)
	assert.Same(t, s, config.Current())
}

type slow struct{ module.Base }

func (slow) Name() string { return "Slow" }

func (slow) Configure(r httpx.Router) {
	r.Get("/deadline", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); ok {
			_, _ = w.Write([]byte("bounded"))
		}
	}))
}

func TestBuildRouterRequestTimeout(t *testing.T) {
	reg, err := module.Bootstrap(slow{})
	require.NoError(t, err)
	h, err := BuildRouter(BuildDeps{Modules: reg, Router: httpx.NewChi(), Timeout: time.Second})
	require.NoError(t, err)

	assert.Equal(t, "bounded", get(h, "/deadline").Body.String())
}
