// Command migrate aplica las migraciones embebidas contra DATABASE_URL (o DB_DSN).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	pg "starwars-blog-api/internal/adapters/storage/postgres"
	"starwars-blog-api/internal/platform/config"
	"starwars-blog-api/internal/platform/logger"
)

func main() {
	log := logger.NewFromEnv().With(map[string]any{"cmd": "migrate"})

	if err := run(log); err != nil {
		log.Error("migrate failed", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(log logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	if cfg.Database.DSN == "" {
		return errors.New("database dsn is required")
	}

	db, err := pg.Open(cfg.Database.DSN, pg.PoolOptions{MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		return fmt.Errorf("database open: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := pg.Migrate(ctx, db)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	if len(applied) == 0 {
		log.Info("schema up to date", nil)
		return nil
	}
	log.Info("migrations applied", map[string]any{"versions": applied})
	return nil
}
