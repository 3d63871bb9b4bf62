// @title         HashSleuth API
// @version       0.1.0
// @description   Hash and encoding format identification endpoints

package main

import (
	"context"

	"hashsleuth/internal/core/catalog"
	"hashsleuth/internal/platform/config"
	"hashsleuth/internal/platform/logger"
	phttp "hashsleuth/internal/platform/net/http"

	"hashsleuth/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// load the pattern catalog (embedded, or an on-disk override)
	var cat *catalog.Catalog
	if path := apiCfg.MayString("CATALOG_PATH", ""); path != "" {
		cat = catalog.LoadFile(path)
	} else {
		cat = catalog.Load()
	}
	l.Info().Int("descriptors", cat.Len()).Int("compiled", cat.CompiledCount()).Msg("catalog loaded")

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Catalog:        cat,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
