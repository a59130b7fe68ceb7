// Package module wires the lost request endpoints into the API
package module

import (
	"net/http"

	"lostfound/internal/modkit"
	"lostfound/internal/modkit/httpkit"
	str "lostfound/internal/platform/strings"
	requestshttp "lostfound/internal/services/api/requests/http"
	invdom "lostfound/internal/services/inventory/domain"
	matchdom "lostfound/internal/services/matching/domain"
)

// Ports required by the module
type Ports struct {
	Inventory invdom.ServicePort
	Matcher   matchdom.ServicePort
}

// Module implements modkit.Module
type Module struct {
	deps modkit.Deps
	b    modkit.Built
}

// New constructs the lost requests module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("api.requests"),
		modkit.WithPrefix("/lost-requests"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Inventory == nil || p.Matcher == nil {
		panic("api requests module: expected WithPorts(api/requests/module.Ports) with Inventory and Matcher")
	}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		requestshttp.Register(r, requestshttp.Deps{Inventory: p.Inventory, Matcher: p.Matcher})
		external(r)
	}
	return &Module{deps: deps, b: b}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.b.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Ports returns nothing; the module only consumes
func (m *Module) Ports() any { return nil }
