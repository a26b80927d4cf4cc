package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionCookieFallback(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("sid")
		if err != nil || c.Value != "live" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username":"bo","role":"editor"}`))
	}))
	defer api.Close()

	s := DefaultSettings()
	s.SessionCookie = "sid"
	s.SessionAPI = api.URL
	h := whoAmI(New(s, nil))

	serve := func(sid string) string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if sid != "" {
			req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Body.String()
	}
	assert.Equal(t, "bo/editor", serve("live"))
	assert.Equal(t, "/", serve("stale"))
	assert.Equal(t, "/", serve(""))

	u, err := New(s, nil).validateSession(httptest.NewRequest(http.MethodGet, "/", nil).Context(), &http.Cookie{Name: "sid", Value: "live"})
	assert.NoError(t, err)
	assert.Equal(t, User{Username: "bo", Provider: "session", Role: "editor"}, u)
}
