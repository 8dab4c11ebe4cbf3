// @title         airreviews API
// @version       0.1.0
// @description   Clean airline reviews: date normalization, quote stripping and lexicon sentiment
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"airreviews/internal/adapters/lexicon/afinn"
	"airreviews/internal/core/lexicon"
	"airreviews/internal/platform/config"
	"airreviews/internal/platform/logger"
	phttp "airreviews/internal/platform/net/http"
	"airreviews/internal/platform/net/middleware"
	"airreviews/internal/services/api"
	reviewsmod "airreviews/internal/services/reviews/module"

	"github.com/go-chi/chi/v5"
)

const service = "airreviews-api"

func main() {
	lo := logger.FromEnv()
	if lo.Service == "" {
		lo.Service = service
	}
	logger.Init(lo)
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the lexicon is loaded once and shared read-only by all request goroutines
	lopts := reviewsmod.FromConfig(root).Lexicon
	snap, err := lexicon.Load(ctx, afinn.NewSource(lopts.SourceOptions()))
	if err != nil {
		l.Fatal().Err(err).Str("source", lopts.Source).Msg("lexicon load failed")
	}

	// http server (reads CORE_API_ADDR etc)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults()...)
	})

	if err := api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Root:           root,
		Logger:         l,
		Lexicon:        snap,
		ServiceName:    service,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
