package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "starwars-blog-api/internal/adapters/storage/postgres"
	"starwars-blog-api/internal/platform/config"
	"starwars-blog-api/internal/platform/logger"
	"starwars-blog-api/internal/router"
)

// @title Star Wars Blog API
// @version 1.0
// @description Catálogo de personajes y planetas con favoritos por usuario.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config load failed", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})

	// os.Exit salta los defer: todo lo que se cierra vive dentro de run
	if err := run(cfg, log); err != nil {
		log.Error("api failed", map[string]any{"error": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.Database.DSN != "" {
		var err error
		db, err = pg.Open(cfg.Database.DSN, pg.PoolOptions{
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		})
		if err != nil {
			return fmt.Errorf("database open: %w", err)
		}
		defer db.Close()

		if cfg.Database.AutoMigrate {
			applied, err := pg.Migrate(ctx, db)
			if err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			log.Info("migrations applied", map[string]any{"versions": applied})
		}
	} else {
		log.Warn("no database dsn, using in-memory store", nil)
	}

	h, err := router.NewRouter(router.Options{Config: cfg, Logger: log, DB: db})
	if err != nil {
		return fmt.Errorf("router init: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", map[string]any{"error": err})
		}
	}()

	log.Info("starting server", map[string]any{"addr": srv.Addr, "postgres": db != nil})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
