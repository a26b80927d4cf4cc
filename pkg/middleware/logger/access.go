package logger

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/middleware/auth"
)

// Middleware writes one access log line per request. Request bodies are redacted
// except on the allowlisted paths.
type Middleware struct {
	log       *zap.Logger
	bodyPaths map[string]struct{}
}

func NewMiddleware(l *zap.Logger, bodyPaths ...string) *Middleware {
	return &Middleware{log: l, bodyPaths: pathSet(bodyPaths)}
}

func (m *Middleware) Handler(ca *auth.Middleware) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)
			body := m.captureBody(r)

			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}

			start := time.Now()
			defer func() {
				var u auth.User
				if ca != nil {
					u = ca.GetUser(r.Context())
				}
				fields := []zap.Field{
					zap.String("dateTime", start.UTC().Format(time.RFC1123)),
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("httpScheme", scheme),
					zap.Bool("isAuthenticated", u.Username != ""),
					zap.String("username", u.Username),
					zap.String("role", u.Role),
					zap.String("authenticationProvider", u.Provider),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.URL.Path),
					zap.String("lang", r.URL.Query().Get("lang")),
					zap.Duration("lat", time.Since(start)),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", ww.Status()),
				}
				if body != nil {
					fields = append(fields, zap.ByteString("requestData", body))
				}
				m.log.Info("", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
