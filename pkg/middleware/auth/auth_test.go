package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeydtaylor/steeze-pages/pkg/core/component"
)

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func whoAmI(m *Middleware) http.Handler {
	return m.Handler()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := m.GetUser(r.Context())
		_, _ = w.Write([]byte(u.Username + "/" + u.Role))
	}))
}

func TestAssertionCookie(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	s := DefaultSettings()
	s.Issuer = "idp"
	s.Audience = "pages"
	m := New(s, &priv.PublicKey)
	h := whoAmI(m)

	now := time.Now()
	good := sign(t, priv, jwt.MapClaims{
		"iss": "idp", "aud": "pages", "uid": "ana", "roles": []string{"editor"},
		"iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
	})
	wrongAud := sign(t, priv, jwt.MapClaims{"iss": "idp", "aud": "other", "uid": "ana"})
	expired := sign(t, priv, jwt.MapClaims{"iss": "idp", "aud": "pages", "uid": "ana", "exp": now.Add(-time.Hour).Unix()})

	cases := map[string]struct {
		cookie string
		want   string
	}{
		"valid":     {good, "ana/editor"},
		"audience":  {wrongAud, "/"},
		"expired":   {expired, "/"},
		"garbage":   {"not-a-jwt", "/"},
		"no cookie": {"", "/"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "assert", Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Body.String())
		})
	}
}

func TestDevBypass(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Dev-User", "dev")
	req.Header.Set("X-Dev-Role", "admin")

	rec := httptest.NewRecorder()
	whoAmI(New(DefaultSettings(), nil)).ServeHTTP(rec, req)
	assert.Equal(t, "/", rec.Body.String())

	s := DefaultSettings()
	s.DevBypass = true
	rec = httptest.NewRecorder()
	whoAmI(New(s, nil)).ServeHTTP(rec, req)
	assert.Equal(t, "dev/admin", rec.Body.String())
}

func TestRequireAndRoles(t *testing.T) {
	s := DefaultSettings()
	s.AdminRole = "admin"
	m := New(s, nil)
	deny := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) })
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	editors := m.Require("editor", deny)(ok)
	members := m.Require("", deny)(ok)

	serve := func(h http.Handler, u User) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithUser(req.Context(), u))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusForbidden, serve(editors, User{}))
	assert.Equal(t, http.StatusForbidden, serve(editors, User{Username: "bo", Role: "viewer"}))
	assert.Equal(t, http.StatusNoContent, serve(editors, User{Username: "bo", Role: "editor"}))
	assert.Equal(t, http.StatusNoContent, serve(editors, User{Username: "root", Role: "admin"}))
	assert.Equal(t, http.StatusNoContent, serve(members, User{Username: "bo"}))
	assert.Equal(t, http.StatusForbidden, serve(members, User{}))
}

func TestRenderabilityPredicates(t *testing.T) {
	m := New(Settings{AdminRole: "admin"}, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	anon := component.NewContext(component.WithRequest(req))
	signed := component.NewContext(component.WithRequest(req.WithContext(WithUser(req.Context(), User{Username: "a", Role: "admin"}))))

	assert.False(t, m.Authenticated()(anon))
	assert.True(t, m.Anonymous()(anon))
	assert.True(t, m.Authenticated()(signed))
	assert.True(t, m.WithRole("editor")(signed))
	assert.True(t, m.IsAdmin(signed.Context()))
}

func TestLoadKey(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	dir := t.TempDir()
	p := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(p, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))

	k, err := LoadKey(p)
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey.N, k.N)

	_, err = LoadKey(filepath.Join(dir, "missing.pem"))
	assert.ErrorContains(t, err, "auth: read key")
}
