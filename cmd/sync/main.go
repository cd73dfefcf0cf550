package main

import (
	"fmt"
	"log/slog"
	"os"

	"courtiq-api/config"
	"courtiq-api/packages/core"
	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	job := os.Args[1]
	if job != services.JobSyncRankings && job != services.JobSyncITF {
		fmt.Printf("Unknown job: %s\n", job)
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("invalid configuration", err)
	}
	config.SetupLogger(cfg.LogLevel)

	db, err := config.ConnectDatabase(cfg.DatabaseURL)
	if err != nil {
		fatal("database unavailable", err)
	}

	// Schedules stay empty: the job runs once, in the foreground.
	module := core.NewModule(db, core.Options{
		Pages: fetch.NewClient(fetch.Options{
			Source:    "tennisrecruiting",
			UserAgent: cfg.FetchUserAgent,
			Timeout:   cfg.FetchTimeout,
		}),
		RankingsAPI: fetch.NewClient(fetch.Options{
			Source:    "itf",
			UserAgent: cfg.FetchUserAgent,
			Timeout:   cfg.ITFFetchTimeout,
			Accept:    "application/json, text/plain, */*",
		}),
		Sync: services.SyncOptions{Delay: cfg.FetchDelay},
	})

	if err := module.RunJob(job); err != nil {
		fatal("sync failed", err)
	}
	fmt.Printf("%s completed successfully\n", job)
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/sync sync-rankings - Sync recruit rankings and scan the class lists")
	fmt.Println("  go run ./cmd/sync sync-itf      - Sync ITF junior rankings into prospects")
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
