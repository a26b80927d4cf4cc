package logger

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

const maxLoggedBody = 64 << 10

type readCloser struct {
	io.Reader
	io.Closer
}

// captureBody returns the request body when the access log may carry it: a small JSON
// body sent to an allowlisted path with POST, PUT or PATCH. The body stays readable
// downstream either way.
func (m *Middleware) captureBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return nil
	}
	if _, ok := m.bodyPaths[r.URL.Path]; !ok {
		return nil
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
	r.Body = readCloser{io.MultiReader(bytes.NewReader(buf), r.Body), r.Body}
	if err != nil || len(buf) == 0 || len(buf) > maxLoggedBody {
		return nil
	}
	return buf
}

func pathSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}
