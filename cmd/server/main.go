package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/rift-companion/internal/api"
	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/config"
	"github.com/dom/rift-companion/internal/live"
	"github.com/dom/rift-companion/internal/repository"
	"github.com/dom/rift-companion/internal/repository/memory"
	"github.com/dom/rift-companion/internal/repository/postgres"
	"github.com/dom/rift-companion/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cat := catalog.Default()
	if err := catalog.Validate(cat); err != nil {
		log.Fatalf("invalid catalog: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, cat)
	if err != nil {
		log.Fatalf("failed to open %s catalog backend: %v", cfg.CatalogBackend, err)
	}

	services := service.NewServices(repos, cfg)

	hub := live.NewHub(services.Advisor, cfg)

	router := api.NewRouter(services, hub, cfg)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		hub.Run()
		return nil
	})

	eg.Go(func() error {
		log.Printf("Server starting on port %s (catalog %s, backend %s)", cfg.Port, catalog.Version, cfg.CatalogBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		hub.Stop()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		log.Printf("ERROR [server] %v", err)
		os.Exit(1)
	}

	log.Println("Server stopped")
}

func openRepositories(ctx context.Context, cfg *config.Config, cat *catalog.Catalog) (*repository.Repositories, error) {
	if cfg.CatalogBackend != config.BackendPostgres {
		return memory.NewRepositories(cat), nil
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	repos := postgres.NewRepositories(db)
	result, err := repository.Seed(ctx, repos, cat)
	if err != nil {
		return nil, err
	}
	log.Printf("Seeded catalog %s: %d champions, %d items, %d runes", result.Version, result.Champions, result.Items, result.Runes)

	return repos, nil
}
