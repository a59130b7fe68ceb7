// Package module implements the inventory service module
package module

import (
	"lostfound/internal/modkit"
	"lostfound/internal/modkit/httpkit"
	"lostfound/internal/services/inventory/domain"
	"lostfound/internal/services/inventory/repo"
	"lostfound/internal/services/inventory/service"
)

// Ports exposed by the inventory module
type Ports struct {
	Reader  domain.ReaderPort
	Writer  domain.WriterPort
	Service domain.ServicePort
}

// Module implements the inventory service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new inventory module on the postgres seam
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())
	return &Module{
		deps:  deps,
		ports: Ports{Reader: svc, Writer: svc, Service: svc},
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "inventory" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; inventory is reached through the api modules
func (m *Module) MountRoutes(httpkit.Router) {}
