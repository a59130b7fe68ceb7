package store

import (
	"time"

	"lostfound/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG  PGConfig
	CH  CHConfig
	RDS RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // ping attempts before Open gives up
	PingTimeout    time.Duration // per attempt
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// ConfigFromEnv reads SERVICE_PGSQL_*, SERVICE_CLICKHOUSE_* and SERVICE_REDIS_* settings.
// Postgres is on by default; the other backends are opt in
func ConfigFromEnv(cfg config.Conf, app string) Config {
	pg := cfg.Prefix("SERVICE_PGSQL_")
	ch := cfg.Prefix("SERVICE_CLICKHOUSE_")
	rds := cfg.Prefix("SERVICE_REDIS_")

	out := Config{
		AppName: app,
		PG: PGConfig{
			Enabled:        pg.MayBool("ENABLED", true),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			MaxConns:       int32(pg.MayIntRange("MAX_CONNS", 8, 1, 256)),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 250),
			ConnectRetries: pg.MayIntRange("CONNECT_RETRIES", 20, 1, 100),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled: ch.MayBool("ENABLED", false),
		},
		RDS: RedisConfig{
			Enabled:  rds.MayBool("ENABLED", false),
			Password: rds.MayString("PASSWORD", ""),
			DB:       rds.MayIntRange("DB", 0, 0, 15),
		},
	}
	if out.PG.Enabled {
		out.PG.URL = pg.MustString("DBURL")
	}
	if out.CH.Enabled {
		out.CH.URL = ch.MustString("DBURL")
	}
	if out.RDS.Enabled {
		out.RDS.Addr = rds.MayString("ADDR", "localhost:6379")
	}
	return out
}
