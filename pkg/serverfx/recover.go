package serverfx

import (
	"fmt"
	"net/http"

	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/response/fatal"
)

// recoverer turns a panicking handler into the themed internal error page, unless the
// handler already started its response. http.ErrAbortHandler is re-raised so the server
// can drop the connection.
func recoverer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Error("handler panic",
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("uri", r.RequestURI),
					zap.Any("panic", rvr),
					zap.Int("status", ww.Status()),
					zap.Stack("stack"),
				)
				if ww.Status() == 0 && r.Header.Get("Connection") != "Upgrade" {
					fatal.Respond(ww, r, fatal.InternalError.WithCause(fmt.Errorf("panic: %v", rvr)))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
