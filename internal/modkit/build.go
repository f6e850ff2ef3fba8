package modkit

import (
	"net/http"

	"devfeed/internal/modkit/httpkit"
	str "devfeed/internal/platform/strings"
)

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	// router hooks set via options
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies defaults first so later options override them
// modules pass their own name and prefix ahead of caller options
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Mount opens the module prefix on r, applies the module middleware and
// subrouter, then registers own routes followed by any extra ones
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	r.Route(b.ModulePrefix(), func(rr httpkit.Router) {
		for _, mw := range b.Mw {
			rr.Use(mw)
		}
		rr = b.Subrouter(rr)
		if own != nil {
			own(rr)
		}
		b.Register(rr)
	})
}

// ModuleName returns the name, panicking when it was never set
func (b Built) ModuleName() string { return str.MustString(b.Name, "module name") }

// ModulePrefix returns the normalized prefix, panicking when it is empty
func (b Built) ModulePrefix() string { return str.MustPrefix(b.Prefix) }
