// Package api provides the HTTP API for the application
package api

import (
	"airreviews/internal/core/lexicon"
	"airreviews/internal/platform/config"
	"airreviews/internal/platform/logger"
	phttp "airreviews/internal/platform/net/http"

	"airreviews/internal/modkit"
	"airreviews/internal/modkit/httpkit"
	"airreviews/internal/modkit/module"
	"airreviews/internal/modkit/swaggerkit"

	apidates "airreviews/internal/services/api/dates/module"
	metamod "airreviews/internal/services/api/meta/module"
	apireviews "airreviews/internal/services/api/reviews/module"
	apisentiment "airreviews/internal/services/api/sentiment/module"

	// service module that owns the Cleaner port
	reviewsmod "airreviews/internal/services/reviews/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf // CORE_API_ view
	Root           config.Conf // unprefixed view for service modules
	Logger         *logger.Logger
	Lexicon        *lexicon.Snapshot
	ServiceName    string
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router. It fails when the reviews
// options do not validate
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Root,
		Lexicon: opt.Lexicon,
	}

	// service module first so its Cleaner can be injected into the API module
	ropts := reviewsmod.FromConfig(deps.Cfg)
	if err := ropts.Validate(); err != nil {
		return err
	}
	reviews := reviewsmod.New(deps, ropts)
	cleaner := module.MustPortsOf[reviewsmod.Ports](reviews).Cleaner

	mods := []modkit.Module{
		metamod.New(deps, opt.ServiceName),
		reviews,
		apireviews.New(deps, modkit.WithPorts(apireviews.Ports{Cleaner: cleaner})),
		apisentiment.New(deps),
		apidates.New(deps),
	}

	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.Options{
		TitleSuffix: opt.Config.MayString("DOCS_TITLE_SUFFIX", ""),
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		modkit.MountAll(api, mods...)
	})

	deps.Logger().Info().
		Strs("modules", module.Names()).
		Int("lexicon_size", opt.Lexicon.Size()).
		Msg("api mounted")
	return nil
}
