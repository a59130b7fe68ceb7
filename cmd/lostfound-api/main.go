// @title         lostfound API
// @version       1.0
// @description   Found item reporting, lost requests and the matching engine
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lostfound/internal/core/lexicon"
	"lostfound/internal/modkit/repokit"
	"lostfound/internal/platform/config"
	"lostfound/internal/platform/logger"
	phttp "lostfound/internal/platform/net/http"
	"lostfound/internal/platform/store"

	"lostfound/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine; the process environment wins either way
	_ = godotenv.Load()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	coreCfg := root.Prefix("CORE_")
	apiCfg := coreCfg.Prefix("API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.ConfigFromEnv(root, "lostfound-api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when a configured backend is unreachable
	repokit.MustGuard(ctx, st, root.MayDuration("STORE_GUARD_TIMEOUT", repokit.DefaultGuardTimeout))

	lx, err := lexicon.LoadFile(root.MayString("LEXICON_FILE", ""))
	if err != nil {
		l.Panic().Err(err).Msg("lexicon load failed")
	}
	l.Info().Int("version", lx.Version()).Int("colors", len(lx.Colors())).Int("brands", len(lx.Brands())).Msg("lexicon loaded")

	// http server (reads CORE_API_PORT and friends)
	srv := phttp.NewServer(coreCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Lexicon:        lx,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
