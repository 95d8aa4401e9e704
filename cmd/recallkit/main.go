// recallkit server — exposes the HTTP API over the session engine,
// persistence layer, and LLM sidecar connection.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/recallkit/recallkit/pkg/api"
	"github.com/recallkit/recallkit/pkg/config"
	"github.com/recallkit/recallkit/pkg/database"
	"github.com/recallkit/recallkit/pkg/llm"
	"github.com/recallkit/recallkit/pkg/seed"
	"github.com/recallkit/recallkit/pkg/services"
	"github.com/recallkit/recallkit/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("RECALLKIT_CONFIG", "./recallkit.yaml"),
		"Path to configuration file")
	flag.Parse()

	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"error", err)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Optional seeding
	if seedFile := os.Getenv("SEED_FILE"); seedFile != "" {
		f, err := seed.Load(seedFile)
		if err != nil {
			slog.Error("Failed to load seed file", "path", seedFile, "error", err)
			os.Exit(1)
		}
		if _, err := seed.Apply(ctx, services.NewSetService(dbClient.Client), f, time.Now()); err != nil {
			slog.Error("Failed to apply seed file", "path", seedFile, "error", err)
			os.Exit(1)
		}
	}

	// 4. Create LLM client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	llmClient, err := llm.NewGRPCClient(cfg.LLM.SidecarAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.SidecarAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.SidecarAddr, "model", cfg.LLM.Model)

	// 5. Create HTTP server
	server := api.NewServer(cfg, dbClient, llmClient)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("recallkit started successfully", "version", version.Full())

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
