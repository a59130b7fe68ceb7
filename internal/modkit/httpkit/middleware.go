package httpkit

import (
	"net/http"
	"time"

	"lostfound/internal/platform/config"
	"lostfound/internal/platform/metrics"
	"lostfound/internal/platform/net/middleware"
)

// StackOptions tunes the api middleware stack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
	Metrics     bool
}

// StackFromConfig reads TIMEOUT, SLOW_MS, CORS_ORIGINS and METRICS under cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
		SlowRequest: time.Duration(cfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		Metrics:     cfg.MayBool("METRICS", true),
	}
}

// CommonStack returns the baseline api middleware with defaults
func CommonStack() []func(http.Handler) http.Handler {
	return Stack(StackOptions{Timeout: 30 * time.Second, SlowRequest: 500 * time.Millisecond, Metrics: true})
}

// Stack builds the api middleware slice: correlation and recovery first,
// then access log, metrics and CORS
func Stack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	mw := middleware.Defaults(o.Timeout)
	mw = append(mw, middleware.AccessLogZerolog(middleware.AccessLogOptions{
		Slow: o.SlowRequest,
		Skip: []string{"/api/v1/meta/health"},
	}))
	if o.Metrics {
		mw = append(mw, metrics.Middleware())
	}
	if len(o.CORSOrigins) > 0 {
		mw = append(mw, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	return mw
}
