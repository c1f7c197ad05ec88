package http

import (
	"net/http"

	perr "freightdesk/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts chi.Router (root mux or sub router) to Router
type chiRouter struct{ r chi.Router }

// AdaptChi adapts a chi router to the platform Router seam
func AdaptChi(r chi.Router) Router { return chiRouter{r: r} }

func (c chiRouter) Get(p string, h Handler)  { c.r.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler) { c.r.Method(http.MethodPost, p, http.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Walk(fn func(method, route string)) error {
	return chi.Walk(c.r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		fn(method, route)
		return nil
	})
}

// Mux returns the underlying handler; chi.Router implements http.Handler
func (c chiRouter) Mux() http.Handler { return c.r }

// jsonFallbacks makes unknown routes and wrong methods answer with the error envelope
func jsonFallbacks(m *chi.Mux) {
	m.NotFound(Handle(func(r *http.Request) Response {
		return Error(perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
	}))
	m.MethodNotAllowed(Handle(func(r *http.Request) Response {
		return Error(perr.Newf(perr.ErrorCodeMethodNotAllowed, "%s not allowed on %s", r.Method, r.URL.Path))
	}))
}
