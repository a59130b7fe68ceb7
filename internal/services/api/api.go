// Package api provides the HTTP API for the application
package api

import (
	"lostfound/internal/core/features"
	"lostfound/internal/core/lexicon"
	"lostfound/internal/core/similarity"
	"lostfound/internal/platform/config"
	"lostfound/internal/platform/metrics"
	phttp "lostfound/internal/platform/net/http"
	"lostfound/internal/platform/store"

	"lostfound/internal/modkit"
	"lostfound/internal/modkit/httpkit"
	"lostfound/internal/modkit/module"
	"lostfound/internal/modkit/swaggerkit"

	itemsmod "lostfound/internal/services/api/items/module"
	apimatching "lostfound/internal/services/api/matching/module"
	metamod "lostfound/internal/services/api/meta/module"
	requestsmod "lostfound/internal/services/api/requests/module"

	inventorymod "lostfound/internal/services/inventory/module"
	matchdom "lostfound/internal/services/matching/domain"
	matchingmod "lostfound/internal/services/matching/module"
	notifymod "lostfound/internal/services/notify/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Lexicon        *lexicon.Lexicon
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.FromStore(opt.Store, opt.Config)

	lx := opt.Lexicon
	if lx == nil {
		lx = lexicon.MustLoad()
	}
	scorer := similarity.New(features.NewWithOptions(lx, features.Options{
		WholeWords: deps.Cfg.Prefix("MATCHING_").MayBool("WHOLE_WORDS", false),
	}))

	// service modules first; the api modules consume their ports
	inventory := inventorymod.New(deps)
	notify := notifymod.New(deps)
	inv := module.MustPortsOf[inventorymod.Ports](inventory)

	matching := matchingmod.New(deps, modkit.WithPorts(matchdom.Inputs{
		Inventory:  inv.Reader,
		Dispatcher: module.MustPortsOf[notifymod.Ports](notify).Dispatcher,
		Scorer:     scorer,
	}))
	mp := module.MustPortsOf[matchingmod.Ports](matching)

	mods := []module.Module{
		inventory,
		notify,
		matching,
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Lexicon: lx})),
		apimatching.New(deps, modkit.WithPorts(apimatching.Ports{Matcher: mp.Matcher})),
		requestsmod.New(deps, modkit.WithPorts(requestsmod.Ports{Inventory: inv.Service, Matcher: mp.Matcher})),
		itemsmod.New(deps, modkit.WithPorts(itemsmod.Ports{Inventory: inv.Writer, Matcher: mp.Matcher, Timeout: mp.Timeout})),
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}

	stack := httpkit.Stack(httpkit.StackFromConfig(deps.Cfg.Prefix("CORE_API_")))
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
