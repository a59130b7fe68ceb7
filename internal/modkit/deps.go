// Package modkit provides module wiring and core deps
package modkit

import (
	"lostfound/internal/modkit/repokit"
	"lostfound/internal/platform/config"
	"lostfound/internal/platform/logger"
	"lostfound/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	RDB store.Redis
}

// FromStore copies the opened backends of st into Deps
// disabled backends stay nil so modules can pick a fallback
func FromStore(st *store.Store, cfg config.Conf) Deps {
	if st == nil {
		return Deps{Log: *logger.Get(), Cfg: cfg}
	}
	return Deps{
		Log: st.Log,
		Cfg: cfg,
		PG:  st.PG,
		CH:  st.CH,
		RDB: st.RDB,
	}
}
