// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"context"
	"net/http"
	"time"

	"lostfound/internal/core/lexicon"
	"lostfound/internal/modkit"
	"lostfound/internal/modkit/httpkit"
	"lostfound/internal/platform/store"
	str "lostfound/internal/platform/strings"

	metahttp "lostfound/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/health and /meta/version
const ServiceName = "lostfound-api"

// Ports are the optional inputs of the meta module
type Ports struct {
	Lexicon *lexicon.Lexicon
}

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	b         modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	m := &Module{deps: deps, startedAt: time.Now()}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Lexicon:     p.Lexicon,
			Checks: []metahttp.Check{
				{Name: "pg", Target: deps.PG},
				{Name: "ch", Target: deps.CH},
				{Name: "redis", Target: redisCheck(deps.RDB)},
			},
		})
		external(r)
	}
	m.b = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.b.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

// redisPinger adapts the go-redis status command to metahttp.Pinger
type redisPinger struct{ rdb store.Redis }

func (p redisPinger) Ping(ctx context.Context) error { return p.rdb.Ping(ctx).Err() }

func redisCheck(rdb store.Redis) any {
	if rdb == nil {
		return nil
	}
	return redisPinger{rdb: rdb}
}
