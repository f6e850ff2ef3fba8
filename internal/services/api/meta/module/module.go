// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	"devfeed/internal/core/version"
	modkit "devfeed/internal/modkit"
	"devfeed/internal/modkit/httpkit"

	metahttp "devfeed/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built    modkit.Built
	handlers metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
// source readiness is read from the same settings the portfolio module uses
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		built: b,
		handlers: metahttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   time.Now(),
			Cache:       deps.Cache,
			Sources:     configuredSources(deps),
		},
	}
}

func configuredSources(deps modkit.Deps) []metahttp.Source {
	cfg := deps.Cfg
	return []metahttp.Source{
		{Name: "github", Configured: cfg.MayString("GITHUB_USERNAME", "") != ""},
		{Name: "stackoverflow", Configured: cfg.MayString("STACKOVERFLOW_USER_ID", "") != ""},
		{Name: "blog", Configured: cfg.FirstString("", "DEVTO_USERNAME", "MEDIUM_USERNAME") != ""},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.handlers) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.ModuleName() }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.built.ModulePrefix() }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
