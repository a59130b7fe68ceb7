// Package module wires the notice drivers selected by configuration
package module

import (
	"fmt"
	"strings"

	"lostfound/internal/modkit"
	"lostfound/internal/modkit/httpkit"
	"lostfound/internal/services/notify/domain"
	"lostfound/internal/services/notify/service"

	"github.com/bwmarrin/discordgo"
	"github.com/slack-go/slack"
)

// Ports exposed by the notify module
type Ports struct {
	Dispatcher domain.Dispatcher
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the notify module from NOTIFY_* config; panics on a driver it cannot build
func New(deps modkit.Deps) *Module {
	d, err := Dispatcher(deps, FromConfig(deps.Cfg))
	if err != nil {
		panic(err)
	}
	return &Module{deps: deps, ports: Ports{Dispatcher: d}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "notify" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; notify has no routes
func (m *Module) MountRoutes(httpkit.Router) {}

// Dispatcher builds the driver chain named by o.Drivers. Duplicates are ignored
func Dispatcher(deps modkit.Deps, o Options) (domain.Dispatcher, error) {
	seen := map[string]bool{}
	var chain service.Multi
	for _, name := range o.Drivers {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case service.DriverLog:
			l := deps.Log.With().Str("component", "notify").Logger()
			chain = append(chain, service.NewLog(&l))
		case service.DriverStream:
			if deps.RDB == nil {
				return nil, fmt.Errorf("notify: stream driver needs SERVICE_REDIS_ENABLED")
			}
			chain = append(chain, service.NewStream(deps.RDB, o.StreamKey, o.StreamMaxLen))
		case service.DriverSlack:
			if o.SlackToken == "" {
				return nil, fmt.Errorf("notify: slack driver needs %s", deps.Cfg.Prefix("NOTIFY_").Key("SLACK_TOKEN"))
			}
			chain = append(chain, service.NewSlack(slack.New(o.SlackToken)))
		case service.DriverDiscord:
			if o.DiscordToken == "" || o.DiscordChannel == "" {
				return nil, fmt.Errorf("notify: discord driver needs a bot token and a channel id")
			}
			s, err := discordgo.New("Bot " + o.DiscordToken)
			if err != nil {
				return nil, fmt.Errorf("notify: discord session: %w", err)
			}
			chain = append(chain, service.NewDiscord(s, o.DiscordChannel))
		default:
			return nil, fmt.Errorf("notify: unknown driver %q", name)
		}
	}

	switch len(chain) {
	case 0:
		return nil, fmt.Errorf("notify: no drivers configured")
	case 1:
		return chain[0], nil
	}
	return chain, nil
}
