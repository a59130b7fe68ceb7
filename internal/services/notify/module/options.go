package module

import (
	"lostfound/internal/platform/config"
	"lostfound/internal/services/notify/service"
)

// Options selects and configures the notice drivers
type Options struct {
	Drivers        []string
	StreamKey      string
	StreamMaxLen   int64
	SlackToken     string
	DiscordToken   string
	DiscordChannel string
}

// FromConfig reads NOTIFY_* settings
func FromConfig(cfg config.Conf) Options {
	n := cfg.Prefix("NOTIFY_")
	return Options{
		Drivers:        n.MayCSV("DRIVER", []string{service.DriverLog}),
		StreamKey:      n.MayString("STREAM_KEY", service.DefaultStreamKey),
		StreamMaxLen:   int64(n.MayIntRange("STREAM_MAXLEN", 10000, 0, 10_000_000)),
		SlackToken:     n.MayString("SLACK_TOKEN", ""),
		DiscordToken:   n.MayString("DISCORD_TOKEN", ""),
		DiscordChannel: n.MayString("DISCORD_CHANNEL", ""),
	}
}
