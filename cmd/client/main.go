package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/orbitmsg/orbit/internal/client/api"
	"github.com/orbitmsg/orbit/internal/client/cli"
	"github.com/orbitmsg/orbit/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	wsURL := flag.String("ws", "ws://localhost:8080/api/v1/push", "Websocket URL")
	dbPath := flag.String("db", "orbit-client.db", "Path to local database")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	}))

	// Создаем контекст
	ctx := context.Background()

	// Открываем BoltDB storage
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

	// Создаем API клиент и CLI
	apiClient := api.NewClient(*serverURL)
	c := cli.New(apiClient, boltStorage, *wsURL, logger)

	// Выполняем команду
	var runErr error
	switch command {
	case "login":
		runErr = c.RunLogin(ctx)
	case "logout":
		runErr = c.RunLogout(ctx)
	case "status":
		runErr = c.RunStatus(ctx)
	case "post":
		runErr = c.RunPost(ctx, args[1:])
	case "watch":
		runErr = c.RunWatch(ctx, args[1:])
	case "bookmark":
		runErr = c.RunBookmark(ctx, argOrEmpty(args, 1), true)
	case "unbookmark":
		runErr = c.RunBookmark(ctx, argOrEmpty(args, 1), false)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func printVersion() {
	fmt.Printf("Orbit Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
