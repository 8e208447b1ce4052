package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "github.com/sharanyanjs/Hotel-management-system/internal/adapters/http_server"
	"github.com/sharanyanjs/Hotel-management-system/internal/adapters/observability"
	redisad "github.com/sharanyanjs/Hotel-management-system/internal/adapters/redis"
	"github.com/sharanyanjs/Hotel-management-system/internal/app"
	"github.com/sharanyanjs/Hotel-management-system/internal/shared"
	"github.com/sharanyanjs/Hotel-management-system/internal/store"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// stores: one registry, one inventory, one ledger for the process
	registry := store.NewRegistry()
	inventory := store.NewInventory()
	ledger := store.NewLedger(inventory)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	queries := app.NewQueries(registry, inventory, ledger, cache, cfg.CacheTTL)
	hotel := app.NewHotel(registry, inventory, ledger, queries, observability.ObserveBooking)

	if cfg.SeedDemo {
		seeder := app.NewSeeder(hotel, cfg.SeedWorkers)
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("demo seeding failed")
		}
	}

	// http
	srv := server.New(cfg.RateLimitRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Hotel: hotel, Q: queries})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
