// Package module wires the portfolio sources, service and routes using modkit
package module

import (
	"net/http"

	"devfeed/internal/adapters/devto"
	"devfeed/internal/adapters/github"
	"devfeed/internal/adapters/stackexchange"
	modkit "devfeed/internal/modkit"
	"devfeed/internal/modkit/httpkit"
	portfoliohttp "devfeed/internal/services/api/portfolio/http"
	portfoliosvc "devfeed/internal/services/api/portfolio/service"
)

// Module implements the portfolio module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports

	svc portfoliosvc.Service
}

// New constructs the portfolio module from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewWith(deps, FromConfig(deps.Cfg), opts...)
}

// NewWith constructs the portfolio module with explicit source options
func NewWith(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("portfolio"), modkit.WithPrefix("/portfolio")}, opts...)...)

	cache := deps.CacheOrNew()
	repos := github.NewSource(
		github.NewClient(github.ClientOptions{
			BaseURL: o.GitHubBaseURL,
			Token:   o.GitHubToken,
			Timeout: o.UpstreamTimeout,
			Metrics: deps.Metrics,
		}),
		cache,
		github.Options{Username: o.GitHubUsername, LanguagesTTL: o.GitHubLanguagesTTL, Metrics: deps.Metrics},
	)
	questions := stackexchange.NewSource(
		stackexchange.NewClient(stackexchange.ClientOptions{
			BaseURL: o.StackOverflowBaseURL,
			Site:    o.StackOverflowSite,
			Key:     o.StackOverflowKey,
			Timeout: o.UpstreamTimeout,
			Metrics: deps.Metrics,
		}),
		cache,
		o.StackOverflowUserID,
	)
	posts := devto.NewSource(
		devto.NewClient(devto.ClientOptions{
			BaseURL: o.DevToBaseURL,
			APIKey:  o.DevToAPIKey,
			Timeout: o.UpstreamTimeout,
			Metrics: deps.Metrics,
		}),
		cache,
		o.DevToUsername,
	)
	svc := portfoliosvc.New(repos, questions, posts)

	return &Module{
		deps:  deps,
		built: b,
		svc:   svc,
		ports: Ports{Service: svc},
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { portfoliohttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.built.ModuleName() }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.built.ModulePrefix() }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Service returns the portfolio service for in process callers such as the CLI
func (m *Module) Service() portfoliosvc.Service { return m.svc }
