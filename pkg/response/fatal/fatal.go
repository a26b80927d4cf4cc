// Package fatal renders request level failures as themed pages.
package fatal

import (
	"embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/joeydtaylor/steeze-pages/pkg/core/component"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/locale"
	"github.com/joeydtaylor/steeze-pages/pkg/response/page"
)

//go:embed locales
var localesFS embed.FS

// L10n holds the messages of the error pages.
var L10n = locale.MustLoad(localesFS, "locales", "en-US")

// Error is a typed request outcome. Compare with errors.Is against the package values.
type Error struct {
	Status int
	key    string
	cause  error
}

var (
	NotFound      = Error{Status: http.StatusNotFound, key: "not_found"}
	AccessDenied  = Error{Status: http.StatusForbidden, key: "access_denied"}
	BadRequest    = Error{Status: http.StatusBadRequest, key: "bad_request"}
	InternalError = Error{Status: http.StatusInternalServerError, key: "internal_error"}
)

func (e Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, http.StatusText(e.Status), e.cause)
	}
	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}

func (e Error) Unwrap() error { return e.cause }

func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Status == e.Status
}

// WithCause returns e wrapping err.
func (e Error) WithCause(err error) Error {
	e.cause = err
	return e
}

// Page builds the error page for r.
func (e Error) Page(r *http.Request) *page.Page {
	p := page.New(module.NewRenderContext(r)).
		WithStatus(e.Status).
		WithTitle(locale.E(e.key+".title", L10n)).
		WithMetadata("robots", "noindex")

	var body component.Component
	if e.Status == http.StatusNotFound {
		body = NewError404(r.URL.Path)
	} else {
		body = NewMessage(e)
	}
	return p.AddIn("content", body)
}

func (e Error) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = e.Page(r).Respond(w)
}

// Respond renders err. Errors that are not an Error are served as InternalError.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	var fe Error
	if !errors.As(err, &fe) {
		fe = InternalError.WithCause(err)
	}
	fe.ServeHTTP(w, r)
}
