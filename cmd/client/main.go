package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/iudanet/mapkeeper/internal/client/api"
	"github.com/iudanet/mapkeeper/internal/client/cli"
	"github.com/iudanet/mapkeeper/internal/client/iocli"
	"github.com/iudanet/mapkeeper/internal/client/layers"
	"github.com/iudanet/mapkeeper/internal/client/markers"
	"github.com/iudanet/mapkeeper/internal/client/session"
	"github.com/iudanet/mapkeeper/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// .env опционален: флаги и окружение важнее
	_ = godotenv.Load()

	defaultServer := os.Getenv("MAPKEEPER_API_URL")
	if defaultServer == "" {
		defaultServer = "http://localhost:5000/api"
	}

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServer, "Server URL")
	dbPath := flag.String("db", "mapkeeper-client.db", "Path to local session cache")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL, logger)

	sessionStore := session.NewStore(apiClient, boltStorage, logger)
	layerStore := layers.NewStore(apiClient, logger)
	markerStore := markers.NewStore(apiClient, sessionStore, logger)

	// Обновленные на фоне токены сразу уходят в локальный кэш
	apiClient.SetOnRefresh(sessionStore.PersistTokens)

	// Поднимаем сессию из кэша до выполнения команды
	if _, err := sessionStore.RestoreSession(ctx); err != nil {
		logger.Warn("failed to restore session", "error", err)
	}

	c := cli.New(iocli.NewStdio(), sessionStore, layerStore, markerStore)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("MapKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
