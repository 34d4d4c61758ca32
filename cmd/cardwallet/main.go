package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"cardwallet/internal/cards"
	"cardwallet/internal/cli"
	"cardwallet/internal/cli/iocli"
	"cardwallet/internal/config"
	"cardwallet/internal/storage"
	"cardwallet/internal/storage/boltdb"
	"cardwallet/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		os.Exit(0)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil, cfg, log).PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if err := storage.SeedIfEmpty(ctx, store, log); err != nil {
		log.Warnw("failed to seed sample cards", "error", err)
	}

	service := cards.NewService(store, log)
	c := cli.New(stdio, service, cfg, log)

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.CardStore, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	switch cfg.Storage {
	case config.StorageSQLite:
		return sqlite.New(ctx, cfg.DBPath)
	case config.StorageBolt:
		return boltdb.New(ctx, cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s. Use: bolt or sqlite", cfg.Storage)
	}
}

func printVersion() {
	fmt.Printf("cardwallet\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
