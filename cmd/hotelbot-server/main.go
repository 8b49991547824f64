// Package main provides the entry point for the hotelbot HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raphaelgruber/hotelbot-go/internal/bot"
	"github.com/raphaelgruber/hotelbot-go/internal/config"
	"github.com/raphaelgruber/hotelbot-go/internal/db"
	"github.com/raphaelgruber/hotelbot-go/internal/scheduler"
	"github.com/raphaelgruber/hotelbot-go/internal/server"
)

const version = "0.1.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() {
		_ = cleanup()
	}()

	logger.Info("hotelbot starting",
		"version", version,
		"port", cfg.Port,
		"db", cfg.DBPath,
	)

	// Knowledge base: built-in unless a YAML override is configured.
	// Configuration errors fail fast, before serving traffic.
	kb, err := bot.LoadKnowledge(cfg.KnowledgeFile)
	if err != nil {
		logger.Error("failed to load knowledge base", "error", err)
		os.Exit(1)
	}
	logger.Info("knowledge base loaded", "categories", len(kb))

	// Open database and ensure schema
	store, err := db.NewClient(cfg.DBPath, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := store.InitSchema(ctx); err != nil {
		logger.Error("failed to initialize database schema", "error", err)
		os.Exit(1)
	}

	// Optional retention scheduler. Disabled by default: purges then happen
	// only on explicit request.
	if cfg.RetentionDays > 0 {
		sched := scheduler.New(store, cfg.RetentionDays, logger)
		if err := sched.Start(ctx, cfg.PurgeSchedule); err != nil {
			logger.Error("failed to start retention scheduler", "error", err)
			os.Exit(1)
		}
		defer sched.Stop()
	}

	engine := bot.NewEngine(kb, store, logger)
	srv := server.New(engine, store, logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server ready", "url", "http://localhost:"+cfg.Port+"/")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("received shutdown signal", "signal", sig)

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
