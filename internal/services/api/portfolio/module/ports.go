package module

import "devfeed/internal/services/api/portfolio/domain"

// Ports holds the ports exposed by the portfolio module
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
