package modkit

import (
	"net/http"

	phttp "airreviews/internal/platform/net/http"
	pstrings "airreviews/internal/platform/strings"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(phttp.Router) phttp.Router
	Register  func(phttp.Router)
}

// Build applies opts over defaults. Hooks default to identity and no-op
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r phttp.Router) phttp.Router { return r }
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Mount opens a route group at b.Prefix, applies middlewares and the subrouter hook,
// then calls own followed by any extra Register hook
func (b Built) Mount(r phttp.Router, own func(phttp.Router)) {
	r.Route(pstrings.MustPrefix(b.Prefix), func(rr phttp.Router) {
		for _, mw := range b.Mw {
			rr.Use(mw)
		}
		rr = b.Subrouter(rr)
		own(rr)
		b.Register(rr)
	})
}
