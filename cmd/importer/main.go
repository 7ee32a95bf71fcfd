package main

import (
	"context"
	"flag"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"saunaandcold/internal/adapters/geocode"
	"saunaandcold/internal/adapters/observability"
	redisad "saunaandcold/internal/adapters/redis"
	"saunaandcold/internal/app"
	"saunaandcold/internal/domain"
	"saunaandcold/internal/shared"
	"saunaandcold/internal/storage/postgres"
)

func main() {
	file := flag.String("file", "", "CSV export to import")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if *file == "" {
		log.Fatal().Msg("-file is required")
	}

	log.Info().
		Str("file", *file).
		Int("workers", cfg.Workers).
		Msg("importer starting")

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()
	log.Info().Msg("db ping ok")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("open csv failed")
	}
	rows, skipped, err := app.ParseCSV(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("parse csv failed")
	}
	log.Info().Int("rows", len(rows)).Int("skipped", skipped).Msg("csv parsed")

	repo := postgres.New(pool)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	geo := geocode.New(cfg.GeocodeBase, cfg.GeocodeRPS)
	ing := app.NewImportService(repo, cache, geo)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var failed atomic.Int64

	for _, row := range rows {
		row := row

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(row app.FacilityRow) {
			defer wg.Done()
			defer sem.Release(1)

			if err := ing.ImportRow(ctx, row); err != nil {
				failed.Add(1)
				log.Warn().Str("name", row.Title).Err(err).Msg("import failed")
			}
		}(row)
	}
	wg.Wait()

	// readers must see the new data on their next fetch
	cats := map[domain.Category]struct{}{}
	for _, row := range rows {
		cats[app.ClassifyCategory(row.CategoryName, row.Title)] = struct{}{}
	}
	for cat := range cats {
		ing.InvalidateCategory(ctx, cat)
	}

	// post-import verification: count what readers will actually see
	for cat := range cats {
		fs, err := repo.ListByCategory(ctx, cat)
		if err != nil {
			log.Warn().Err(err).Str("category", string(cat)).Msg("verification query failed")
			continue
		}
		log.Info().Str("category", string(cat)).Int("count", len(fs)).Msg("facilities in store")
	}

	log.Info().
		Int("rows", len(rows)).
		Int64("failed", failed.Load()).
		Msg("import completed")
}
