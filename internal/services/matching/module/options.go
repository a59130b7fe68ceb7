package module

import (
	"time"

	"lostfound/internal/platform/config"
	"lostfound/internal/services/matching/service"
)

// Options holds the matching engine settings
type Options struct {
	Threshold         int
	Workers           int
	NotifyConcurrency int
	Timeout           time.Duration // bound on the post commit run in the items api
}

// FromConfig reads MATCHING_* settings. MATCH_THRESHOLD is honored when MATCHING_THRESHOLD is unset
func FromConfig(cfg config.Conf) Options {
	mc := cfg.Prefix("MATCHING_")
	threshold := cfg.MayIntRange("MATCH_THRESHOLD", service.DefaultThreshold, 0, 100)
	if mc.Has("THRESHOLD") {
		threshold = mc.MayIntRange("THRESHOLD", service.DefaultThreshold, 0, 100)
	}
	return Options{
		Threshold:         threshold,
		Workers:           mc.MayIntRange("WORKERS", service.DefaultWorkers, 1, 64),
		NotifyConcurrency: mc.MayIntRange("NOTIFY_CONCURRENCY", service.DefaultNotifyConcurrency, 1, 64),
		Timeout:           mc.MayDuration("TIMEOUT", 10*time.Second),
	}
}
