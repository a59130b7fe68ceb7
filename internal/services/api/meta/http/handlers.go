// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"lostfound/internal/core/lexicon"
	"lostfound/internal/core/version"
	"lostfound/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Check names one dependency pinged by /meta/ready. A nil Target is reported as skipped
type Check struct {
	Name   string
	Target any
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Lexicon     *lexicon.Lexicon
	Checks      []Check
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/lexicon", h.lexicon)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"lostfound-api"`
	Started string `json:"started"  example:"2026-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2026-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"lostfound-api"`
	Started string `json:"started" example:"2026-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// LexiconResponse reports the loaded word lists
type LexiconResponse struct {
	Version    int      `json:"version"     example:"1"`
	Colors     int      `json:"colors"      example:"34"`
	Brands     int      `json:"brands"      example:"40"`
	Categories []string `json:"categories"`
	Stopwords  int      `json:"stopwords"   example:"80"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	ping := func(c Check) ReadyCheck {
		if c.Target == nil {
			return ReadyCheck{Name: c.Name, Status: "skipped"}
		}
		if p, ok := c.Target.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: c.Name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: c.Name, Status: "ok"}
		}
		return ReadyCheck{Name: c.Name, Status: "unknown"}
	}

	checks := make([]ReadyCheck, 0, len(h.deps.Checks))
	overall := "ok"
	for _, c := range h.deps.Checks {
		rc := ping(c)
		checks = append(checks, rc)
		switch {
		case rc.Status == "fail":
			overall = "fail"
		case rc.Status != "ok" && overall == "ok":
			overall = "degraded"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	bi := version.Info(h.deps.ServiceName)
	if h.deps.Lexicon != nil {
		bi.Lexicon = h.deps.Lexicon.Version()
	}
	return bi, nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/lexicon Meta metaLexicon
// @Summary Loaded lexicon version and list sizes
// @Tags Meta
// @Produce json
// @Success 200 {object} LexiconResponse "ok"
// @Router /meta/lexicon [get]
func (h *handlers) lexicon(_ *http.Request) (any, error) {
	lx := h.deps.Lexicon
	if lx == nil {
		return LexiconResponse{Categories: []string{}}, nil
	}
	its := lx.ItemTypes()
	cats := make([]string, len(its))
	for i, g := range its {
		cats[i] = g.Category
	}
	return LexiconResponse{
		Version:    lx.Version(),
		Colors:     len(lx.Colors()),
		Brands:     len(lx.Brands()),
		Categories: cats,
		Stopwords:  len(lx.Stopwords()),
	}, nil
}
