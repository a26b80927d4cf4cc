package logger

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/middleware/auth"
)

func TestAccessLogLine(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewMiddleware(zap.New(core))
	ca := auth.New(auth.DefaultSettings(), nil)

	h := chimd.RequestID(m.Handler(ca)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/about?lang=es-ES", nil)
	req = req.WithContext(auth.WithUser(req.Context(), auth.User{Username: "ana", Role: "editor"}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/about", fields["uri"])
	assert.Equal(t, "es-ES", fields["lang"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, int64(4), fields["responseSize"])
	assert.Equal(t, "ana", fields["username"])
	assert.Equal(t, true, fields["isAuthenticated"])
	assert.NotEmpty(t, fields["requestId"])
}

func TestNewLogWritesRotatingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults().Log
	cfg.Path = dir
	cfg.Level = "warn"

	l := NewLog("test.log", cfg)
	l.Info("dropped")
	l.Warn("kept", zap.String("k", "v"))
	_ = l.Sync()

	b, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"k":"v"`)
	assert.NotContains(t, string(b), "dropped")
}

func TestNewLogStdoutOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults().Log
	cfg.Path = filepath.Join(dir, "never")
	cfg.StdoutOnly = true

	NewLog("x.log", cfg).Info("hello")
	_, err := os.Stat(cfg.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestAccessLogBodyAllowlist(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewMiddleware(zap.New(core), " /feedback ", "")
	var seen string
	h := m.Handler(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = string(b)
	}))

	big := `{"x":"` + strings.Repeat("a", 70<<10) + `"}`
	cases := map[string]struct {
		path, ctype, body string
		logged            bool
	}{
		"allowlisted": {"/feedback", "application/json; charset=utf-8", `{"ok":true}`, true},
		"other path":  {"/contact", "application/json", `{"ok":true}`, false},
		"not json":    {"/feedback", "text/plain", "hi", false},
		"too large":   {"/feedback", "application/json", big, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			logs.TakeAll()
			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.ctype)
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tc.body, seen)
			require.Equal(t, 1, logs.Len())
			data, ok := logs.All()[0].ContextMap()["requestData"]
			assert.Equal(t, tc.logged, ok)
			if tc.logged {
				assert.Equal(t, tc.body, data)
			}
		})
	}
}
