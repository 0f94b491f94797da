package main

import (
	"context"
	"flag"
	"os"
	"time"

	"inkwell/internal/adapters/llm/gemini"
	"inkwell/internal/modkit"
	"inkwell/internal/modkit/module"
	"inkwell/internal/modkit/repokit"
	"inkwell/internal/platform/config"
	"inkwell/internal/platform/logger"
	"inkwell/internal/platform/store"

	summarymod "inkwell/internal/services/api/summary/module"
	digestmod "inkwell/internal/services/digest/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")
	gemCfg := root.Prefix("GEMINI_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		fAt   = flag.String("at", "", "local wall clock time to fire, HH:MM (default from DIGEST_AT or 23:30)")
		fOnce = flag.Bool("once", false, "run a single digest pass and exit")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}
	if ms := dbCfg.MayInt("TX_TIMEOUT_MS", 5000); ms > 0 {
		deps.PG = repokit.WithBeginHooks(st.PG, repokit.StatementTimeout(time.Duration(ms)*time.Millisecond))
	}

	// Export as env so the module can also read via FromConfig
	mustSetEnv("DIGEST_AT", *fAt)

	oracle := gemini.New(gemini.Config{
		APIKey:  gemCfg.MayString("API_KEY", ""),
		Model:   gemCfg.MayString("MODEL", "gemini-2.0-flash"),
		BaseURL: gemCfg.MayString("BASE_URL", ""),
		Timeout: gemCfg.MayDuration("TIMEOUT", 0),
	})

	// The summary module owns generation, the digest only schedules it
	summary := summarymod.New(deps, oracle)
	gen := module.MustPortsOf[summarymod.Ports](summary).Generator

	mod, err := digestmod.New(deps, gen, digestmod.Options{At: *fAt})
	if err != nil {
		l.Fatal().Err(err).Msg("digest config invalid")
	}
	module.Register(mod.Name(), mod.Ports())

	runner := module.MustPortsOf[digestmod.Ports](mod).Runner

	if *fOnce {
		if err := runner.RunOnce(context.Background()); err != nil {
			l.Fatal().Err(err).Msg("digest pass failed")
		}
		return
	}

	if err := runner.Run(context.Background()); err != nil && err != context.Canceled {
		l.Fatal().Err(err).Msg("digest worker failed")
	}
}
