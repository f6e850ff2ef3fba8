// Package module defines the contract every API module satisfies and the
// registry modules publish their ports to during bootstrap
package module

import (
	phttp "devfeed/internal/platform/net/http"
)

// Module is what the api package mounts under /api/v1
// kept apart from modkit so a module can export its own Ports type without import knots
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
