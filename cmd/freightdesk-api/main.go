// @title         Freightdesk API
// @version       0.1.0
// @description   Structured field extraction for free-text shipment inquiries
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"freightdesk/internal/core/version"
	"freightdesk/internal/platform/config"
	"freightdesk/internal/platform/logger"
	phttp "freightdesk/internal/platform/net/http"

	"freightdesk/internal/services/api"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// modules read their own prefixes (CORE_INQUIRY_*); the server reads CORE_API_*
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := phttp.NewServer(apiCfg)
	err := api.Mount(srv.Router(), api.Options{
		Config:         root,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	bi := version.Info()
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting " + bi.Service)

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
