// Package api provides the HTTP API for the application
package api

import (
	"freightdesk/internal/core/vocab"
	"freightdesk/internal/platform/config"
	"freightdesk/internal/platform/logger"
	phttp "freightdesk/internal/platform/net/http"

	"freightdesk/internal/modkit"
	"freightdesk/internal/modkit/httpkit"
	"freightdesk/internal/modkit/module"
	"freightdesk/internal/modkit/swaggerkit"

	inquirymod "freightdesk/internal/services/api/inquiry/module"
	metamod "freightdesk/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	// Config is the root config; modules and the stack apply their own prefixes
	Config         config.Conf
	Logger         *logger.Logger
	Vocab          *vocab.Vocabulary
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		Vocab: opt.Vocab,
	}

	mods, err := modkit.BuildAll(deps, []modkit.Option{modkit.WithSwagger(opt.EnableSwagger)},
		metamod.Builder,
		inquirymod.Builder,
	)
	if err != nil {
		return err
	}

	stack := httpkit.CommonStack(httpkit.StackFromConfig(opt.Config.Prefix("CORE_API_")))
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	log := deps.Logger()
	log.Info().Strs("modules", module.Names()).Msg("api mounted")
	if log.Debug().Enabled() {
		_ = r.Walk(func(method, route string) {
			log.Debug().Str("method", method).Str("route", route).Msg("route")
		})
	}
	return nil
}
