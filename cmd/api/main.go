package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "saunaandcold/internal/adapters/http_server"
	"saunaandcold/internal/adapters/observability"
	redisad "saunaandcold/internal/adapters/redis"
	"saunaandcold/internal/app"
	"saunaandcold/internal/domain"
	"saunaandcold/internal/regions"
	"saunaandcold/internal/shared"
	"saunaandcold/internal/storage/postgres"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// region table is validated at startup; a duplicate county entry would
	// make URL resolution order-dependent, so refuse to serve.
	resolver, err := regions.NewResolver()
	if err != nil {
		log.Fatal().Err(err).Msg("region table invalid")
	}

	// Without a configured database the service still comes up: listings
	// serve empty and waitlist signups answer 503. A configured but
	// unreachable store is still fatal.
	var (
		repo   domain.FacilityRepository
		wlRepo domain.WaitlistRepository
	)
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("no database configured, serving degraded")
	} else {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		defer pool.Close()
		log.Info().Msg("database connection ok")
		r := postgres.New(pool)
		repo, wlRepo = r, r
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(repo, cache, resolver, cfg.CacheTTL)
	wl := app.NewWaitlistService(wlRepo)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, W: wl, BaseURL: cfg.BaseURL})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
