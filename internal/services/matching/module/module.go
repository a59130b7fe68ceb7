// Package module implements the matching module
package module

import (
	"time"

	"lostfound/internal/modkit"
	"lostfound/internal/modkit/httpkit"
	"lostfound/internal/services/matching/domain"
	"lostfound/internal/services/matching/repo"
	"lostfound/internal/services/matching/service"
)

// Ports exposed by the matching module
type Ports struct {
	Matcher domain.ServicePort
	Timeout time.Duration
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the matching module; collaborators arrive via modkit.WithPorts(domain.Inputs)
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("matching"),
	}, opts...)...)

	in, ok := b.Ports.(domain.Inputs)
	if !ok {
		panic("matching module: expected WithPorts(matching/domain.Inputs)")
	}
	if in.Inventory == nil || in.Dispatcher == nil || in.Scorer == nil {
		panic("matching module: Inputs missing Inventory, Dispatcher or Scorer")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(in.Inventory, in.Dispatcher, in.Scorer, repo.NewCH(deps.CH), service.Config{
		Threshold:         cfg.Threshold,
		Workers:           cfg.Workers,
		NotifyConcurrency: cfg.NotifyConcurrency,
	})

	deps.Log.Info().
		Int("threshold", svc.Cfg.Threshold).
		Int("workers", svc.Cfg.Workers).
		Int("notify_concurrency", svc.Cfg.NotifyConcurrency).
		Bool("telemetry", deps.CH != nil).
		Msg("matching ready")

	return &Module{deps: deps, ports: Ports{Matcher: svc, Timeout: cfg.Timeout}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "matching" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; the engine is reached through the api modules
func (m *Module) MountRoutes(httpkit.Router) {}
