package modkit

import (
	"devfeed/internal/modkit/module"
)

// Module is the surface every API module offers: routes, ports and a name
type Module = module.Module

// Builder constructs a Module from shared deps and options
// meta and portfolio both expose New with this shape
type Builder func(Deps, ...Option) Module

// BuildAll runs each builder against the same deps, in order
func BuildAll(deps Deps, builders ...Builder) []Module {
	out := make([]Module, 0, len(builders))
	for _, b := range builders {
		out = append(out, b(deps))
	}
	return out
}
