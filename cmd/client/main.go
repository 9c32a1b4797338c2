package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	clientapi "github.com/lyrebird-app/lyrebird/internal/client/api"
	"github.com/lyrebird-app/lyrebird/internal/client/auth"
	"github.com/lyrebird-app/lyrebird/internal/client/cli"
	"github.com/lyrebird-app/lyrebird/internal/client/iocli"
	"github.com/lyrebird-app/lyrebird/internal/client/songs"
	"github.com/lyrebird-app/lyrebird/internal/client/storage/boltdb"
	"github.com/lyrebird-app/lyrebird/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "lyrebird-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	io := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		io.Println("Missing command. Run 'lyrebird help' for the command reference.")
		os.Exit(1)
	}

	command := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", slog.Any("error", err))
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	apiClient := clientapi.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage)
	songService := songs.NewService(apiClient, boltStorage)
	syncService := sync.NewService(apiClient, boltStorage, logger)

	c := cli.New(io, apiClient, authService, songService, syncService)

	if command == "help" {
		c.PrintUsage()
		return
	}

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Lyrebird Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
