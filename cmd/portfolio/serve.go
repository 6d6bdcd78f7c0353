package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siraphop/portfolio-api/internal/config"
	"github.com/siraphop/portfolio-api/internal/db"
	"github.com/siraphop/portfolio-api/internal/logger"
	"github.com/siraphop/portfolio-api/internal/server"
)

var (
	servePort   int
	serveMemory bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start the HTTP server exposing the content, project, skill, and experience endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "Use an in-memory store instead of MongoDB")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, cfg.LogPath)
	defer func() { _ = log.Sync() }()

	store, err := openStore(cfg, log)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Store:  store,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func openStore(cfg *config.Config, log *zap.Logger) (db.Store, error) {
	if serveMemory {
		log.Warn("using in-memory store; data will not survive a restart")
		return db.NewMemory(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}
	log.Info("connected to database", zap.String("db", cfg.MongoDB))
	return store, nil
}
