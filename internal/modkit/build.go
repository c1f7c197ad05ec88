package modkit

import (
	"net/http"

	"freightdesk/internal/modkit/httpkit"
	str "freightdesk/internal/platform/strings"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build starts from defaults, then applies opts in order so later options win
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range defaults {
		o(&c)
	}
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		SwaggerOn: c.swaggerOn,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Mount routes a module under Prefix. Middlewares and Subrouter wrap the scope,
// then own registers the module's endpoints and Register any extras
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	r.Route(str.MustPrefix(b.Prefix), func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		if b.Subrouter != nil {
			rr = b.Subrouter(rr)
		}
		if own != nil {
			own(rr)
		}
		if b.Register != nil {
			b.Register(rr)
		}
	})
}
