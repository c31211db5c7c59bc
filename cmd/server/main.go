package main

import (
	"context"
	"os"
	"time"

	"foliolink/internal/config"
	"foliolink/internal/db"
	"foliolink/internal/logging"
	"foliolink/internal/repository"
	"foliolink/internal/server"
	"foliolink/internal/tasks"
	"foliolink/internal/telemetry"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foliolink",
	Short: "Foliolink contact and analytics API",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logging.InitLogger(&logging.LogConfig{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}); err != nil {
		return err
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	ctx := context.Background()
	shutdownTelemetry, err := telemetry.Init(ctx, "foliolink", cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize telemetry: %v", err)
		return err
	}
	defer shutdownTelemetry(ctx)

	client, err := db.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		return err
	}
	defer client.Close()

	database := db.NewDatabase(client)

	// Sweep expired rate-limit rows in the background
	cleanup := tasks.NewRateLimitCleanup(
		repository.NewRateLimitRepository(client),
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
	)
	cleanup.Start()
	logger.Info("Started rate limit cleanup task")

	srv := server.NewServer(cfg, database)
	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		return err
	}

	return srv.Start()
}

func runMigrate() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logging.InitLogger(&logging.LogConfig{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}); err != nil {
		return err
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	// Initialize runs the schema migration as part of opening the client
	client, err := db.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Migration failed: %v", err)
		return err
	}
	defer client.Close()

	logger.Info("Database schema is up to date")
	return nil
}
