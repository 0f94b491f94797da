// Package api provides the HTTP API for the application
package api

import (
	"time"

	"inkwell/internal/platform/config"
	"inkwell/internal/platform/logger"
	phttp "inkwell/internal/platform/net/http"
	pnetmw "inkwell/internal/platform/net/middleware"
	"inkwell/internal/platform/store"

	"inkwell/internal/modkit"
	"inkwell/internal/modkit/httpkit"
	"inkwell/internal/modkit/module"
	"inkwell/internal/modkit/repokit"
	"inkwell/internal/modkit/swaggerkit"

	"inkwell/internal/adapters/llm"
	"inkwell/internal/adapters/llm/gemini"

	insightsmod "inkwell/internal/services/api/insights/module"
	journalmod "inkwell/internal/services/api/journal/module"
	metamod "inkwell/internal/services/api/meta/module"
	moodmod "inkwell/internal/services/api/mood/module"
	summarymod "inkwell/internal/services/api/summary/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Oracle         llm.Oracle // nil builds a Gemini client from config
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules; every module tx gets a statement timeout
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  guardedPG(opt.Config, opt.Store.PG),
	}

	oracle := opt.Oracle
	if oracle == nil {
		oracle = gemini.New(geminiConfig(opt.Config))
	}

	// journal data is scoped to the caller's X-User-ID on every module but meta
	scope := httpkit.UserScope(pnetmw.HeaderUser{})

	// Construct the summary module first and extract its cross module ports
	summary := summarymod.New(deps, oracle, modkit.WithMiddlewares(scope))
	sumPorts := module.MustPortsOf[summarymod.Ports](summary)

	journal := journalmod.New(
		deps,
		oracle,
		modkit.WithMiddlewares(scope),
		modkit.WithPorts(journalmod.Ports{
			Invalidator: sumPorts.Invalidator,
		}),
	)
	mood := moodmod.New(
		deps,
		modkit.WithMiddlewares(scope),
		modkit.WithPorts(moodmod.Ports{
			Reader:      sumPorts.Reader,
			Invalidator: sumPorts.Invalidator,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		summary,
		journal,
		mood,
		insightsmod.New(deps, modkit.WithMiddlewares(scope)),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

// guardedPG wraps the pg runner so transactions carry a local statement
// timeout; SERVICE_PGSQL_TX_TIMEOUT_MS=0 disables it
func guardedPG(cfg config.Conf, pg store.TxRunner) store.TxRunner {
	ms := cfg.Prefix("SERVICE_PGSQL_").MayInt("TX_TIMEOUT_MS", 5000)
	if ms <= 0 {
		return pg
	}
	return repokit.WithBeginHooks(pg, repokit.StatementTimeout(time.Duration(ms)*time.Millisecond))
}

// geminiConfig reads GEMINI_* keys from the service config view
func geminiConfig(cfg config.Conf) gemini.Config {
	g := cfg.Prefix("GEMINI_")
	return gemini.Config{
		APIKey:  g.MayString("API_KEY", ""),
		Model:   g.MayString("MODEL", "gemini-2.0-flash"),
		BaseURL: g.MayString("BASE_URL", ""),
		Timeout: g.MayDuration("TIMEOUT", 0),
	}
}
