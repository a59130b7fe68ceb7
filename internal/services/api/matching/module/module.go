// Package module wires the matching utility endpoints into the API
package module

import (
	"net/http"

	"lostfound/internal/modkit"
	"lostfound/internal/modkit/httpkit"
	str "lostfound/internal/platform/strings"
	matchinghttp "lostfound/internal/services/api/matching/http"
	matchdom "lostfound/internal/services/matching/domain"
)

// Ports required by the module
type Ports struct {
	Matcher matchdom.ServicePort
}

// Module implements modkit.Module
type Module struct {
	deps modkit.Deps
	b    modkit.Built
}

// New constructs the module; the engine arrives via modkit.WithPorts(Ports)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("api.matching"),
		modkit.WithPrefix("/matching"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Matcher == nil {
		panic("api matching module: expected WithPorts(api/matching/module.Ports) with a Matcher")
	}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		matchinghttp.Register(r, p.Matcher)
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
