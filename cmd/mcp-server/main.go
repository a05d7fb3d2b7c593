package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"worldforge/internal/config"
	"worldforge/internal/mcp"
	"worldforge/internal/service"
	"worldforge/internal/storage"
	"worldforge/internal/tags"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// stdout carries the stdio transport, so logs go to stderr
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

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

	taxonomy, err := tags.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		log.Fatalf("Failed to load tag taxonomy: %v", err)
	}

	srv := mcp.NewServer(service.NewWorldService(
		storage.NewProjectRepo(db),
		storage.NewEntityRepo(db),
		storage.NewConnectionRepo(db),
		storage.NewRelationRepo(db),
		taxonomy,
	))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch cfg.MCPTransport {
	case "http":
		addr := ":" + cfg.MCPPort
		slog.Info("MCP server listening", "addr", addr, "db", cfg.DBPath)
		err = srv.RunHTTP(ctx, addr)
	default:
		slog.Info("MCP server starting", "transport", "stdio", "db", cfg.DBPath)
		err = srv.Run(ctx)
	}
	if err != nil && ctx.Err() == nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
