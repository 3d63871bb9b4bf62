// Package api provides the HTTP API for the application
package api

import (
	"hashsleuth/internal/core/catalog"
	"hashsleuth/internal/platform/config"
	"hashsleuth/internal/platform/logger"
	phttp "hashsleuth/internal/platform/net/http"

	"hashsleuth/internal/modkit"
	"hashsleuth/internal/modkit/httpkit"
	"hashsleuth/internal/modkit/module"
	"hashsleuth/internal/modkit/swaggerkit"

	analyzermod "hashsleuth/internal/services/api/analyzer/module"
	metamod "hashsleuth/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Catalog        *catalog.Catalog
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Catalog: opt.Catalog,
	}

	mods := []module.Module{
		metamod.New(deps),
		analyzermod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
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
