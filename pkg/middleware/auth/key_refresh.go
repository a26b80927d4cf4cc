package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const minKeyTTL = 5 * time.Second

type jwk struct {
	Kty string `json:"kty"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// RefreshKey fetches the assertion key from the configured URL. A 304 keeps the
// current key. Cache-Control max-age sets the next refresh interval.
func (m *Middleware) RefreshKey(ctx context.Context) error {
	if m.keyURL == "" {
		return errors.New("auth: assertion_key_url not set")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.keyURL, nil)
	if err != nil {
		return err
	}
	if etag := m.getETag(); etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	req.Header.Set("Accept", "application/json, application/x-pem-file, */*")

	res, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth: key fetch: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotModified && m.getKey() != nil {
		m.mu.Lock()
		m.updateTTLLocked(res)
		m.mu.Unlock()
		return nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("auth: key fetch %s: %s", m.keyURL, res.Status)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("auth: key fetch: %w", err)
	}
	var key *rsa.PublicKey
	ct := strings.ToLower(res.Header.Get("Content-Type"))
	if strings.Contains(ct, "json") || strings.HasSuffix(strings.ToLower(m.keyURL), ".json") {
		key, err = keyFromJWKS(body, m.keyKID)
	} else {
		key, err = jwt.ParseRSAPublicKeyFromPEM(body)
	}
	if err != nil {
		return fmt.Errorf("auth: key fetch %s: %w", m.keyURL, err)
	}

	m.mu.Lock()
	m.key = key
	m.etag = res.Header.Get("ETag")
	m.updateTTLLocked(res)
	m.mu.Unlock()
	return nil
}

// RunKeyRefresh refetches the key until ctx is done. Failures keep the last good key.
func (m *Middleware) RunKeyRefresh(ctx context.Context, log *zap.Logger) {
	for {
		t := time.NewTimer(m.getTTL())
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
		if err := m.RefreshKey(ctx); err != nil && ctx.Err() == nil {
			log.Warn("assertion key refresh failed", zap.Error(err), zap.String("url", m.keyURL))
		}
	}
}

// keyFromJWKS picks the key with kid, or the first RSA signing key when kid is empty.
func keyFromJWKS(body []byte, kid string) (*rsa.PublicKey, error) {
	var set struct {
		Keys []jwk `json:"keys"`
	}
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, err
	}
	for _, k := range set.Keys {
		if k.Kty != "RSA" {
			continue
		}
		if kid != "" {
			if k.Kid == kid {
				return k.rsa()
			}
			continue
		}
		if (k.Use == "" || k.Use == "sig") && (k.Alg == "" || strings.EqualFold(k.Alg, "RS256")) {
			return k.rsa()
		}
	}
	return nil, errors.New("no suitable RSA key in JWKS")
}

func (k jwk) rsa() (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("bad jwks n: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("bad jwks e: %w", err)
	}
	exp := new(big.Int).SetBytes(e)
	if len(n) == 0 || !exp.IsInt64() || exp.Int64() < 3 || exp.Int64() > 1<<31-1 {
		return nil, errors.New("bad jwks key")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: int(exp.Int64())}, nil
}

func (m *Middleware) updateTTLLocked(res *http.Response) {
	for _, p := range strings.Split(res.Header.Get("Cache-Control"), ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if v, ok := strings.CutPrefix(p, "max-age="); ok {
			if secs, err := strconv.Atoi(v); err == nil && secs >= 5 {
				m.cacheTTL = time.Duration(secs) * time.Second
			}
			return
		}
	}
}

func (m *Middleware) getKey() *rsa.PublicKey {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.key
}

func (m *Middleware) getETag() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.etag
}

func (m *Middleware) getTTL() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return max(m.cacheTTL, minKeyTTL)
}
