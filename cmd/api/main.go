package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worldforge/internal/config"
	"worldforge/internal/http"
	"worldforge/internal/service"
	"worldforge/internal/storage"
	"worldforge/internal/tags"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API organizes worldbuilding projects: characters, locations, timeline
// events, magic systems, lore and notes, with cross-entity search, tag
// recommendations and an entity connection graph.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Worldforge API
//   description: |
//     Worldbuilding organizer API. Search every entity of a project by relevance,
//     get tag suggestions for lore text, and connect entities into a navigable graph.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	taxonomy, err := tags.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		log.Fatalf("Failed to load tag taxonomy: %v", err)
	}
	slog.Info("Tag taxonomy loaded", "tags", len(taxonomy.TagNames()), "categories", len(taxonomy.CategoryNames()))

	worldService := service.NewWorldService(
		storage.NewProjectRepo(db),
		storage.NewEntityRepo(db),
		storage.NewConnectionRepo(db),
		storage.NewRelationRepo(db),
		taxonomy,
	)

	router := http.NewRouter(&http.Deps{
		WorldService: worldService,
		DB:           db,
		SearchRateLimit: http.RateLimitConfig{
			RequestsPerSecond: cfg.SearchRateLimit,
			Burst:             cfg.SearchRateBurst,
		},
	})

	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}()

	// Start API server
	slog.Info("Starting API server", "addr", srv.Addr)
	slog.Debug("Search rate limit", "rps", cfg.SearchRateLimit, "burst", cfg.SearchRateBurst)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}
