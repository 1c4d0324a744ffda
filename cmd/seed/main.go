// Command seed importa planetas y personajes desde SWAPI (SWAPI_URL).
// Los nombres existentes se saltean, así que se puede correr varias veces.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pg "starwars-blog-api/internal/adapters/storage/postgres"
	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/platform/config"
	"starwars-blog-api/internal/platform/httpclient"
	"starwars-blog-api/internal/platform/logger"
	"starwars-blog-api/internal/seed"
)

func main() {
	log := logger.NewFromEnv().With(map[string]any{"cmd": "seed"})

	rep, err := run(log)
	if err != nil {
		log.Error("seed failed", map[string]any{"error": err, "partial": rep})
		os.Exit(1)
	}
}

func run(log logger.Logger) (seed.Report, error) {
	cfg, err := config.Load()
	if err != nil {
		return seed.Report{}, fmt.Errorf("config load: %w", err)
	}
	if cfg.Database.DSN == "" {
		return seed.Report{}, errors.New("database dsn is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pg.Open(cfg.Database.DSN, pg.PoolOptions{MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		return seed.Report{}, fmt.Errorf("database open: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if _, err := pg.Migrate(ctx, db); err != nil {
			return seed.Report{}, fmt.Errorf("migrations: %w", err)
		}
	}

	client, err := httpclient.New(httpclient.Options{
		BaseURL:   cfg.Seed.BaseURL,
		Timeout:   cfg.Seed.Timeout,
		UserAgent: cfg.Logging.App + "/seed",
	})
	if err != nil {
		return seed.Report{}, fmt.Errorf("swapi client init: %w", err)
	}

	return importCatalog(ctx, db, client, cfg.Seed.MaxPages, log)
}

func importCatalog(ctx context.Context, db *sql.DB, src seed.Fetcher, maxPages int, log logger.Logger) (seed.Report, error) {
	favRepo := pg.NewFavoritesRepo(db)
	peopleSvc := people.NewService(pg.NewPeopleRepo(db), favorites.PersonRefs(favRepo))
	planetsSvc := planets.NewService(pg.NewPlanetsRepo(db), favorites.PlanetRefs(favRepo))

	im := seed.NewImporter(src, peopleSvc, planetsSvc, seed.Options{MaxPages: maxPages, Log: log})
	return im.Run(ctx)
}
