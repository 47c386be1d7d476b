// Command cleanup removes rows orphaned by hard deletes: cards, groups and
// action items of deleted retrospectives, and votes and comments of deleted
// cards. Deletes never cascade at runtime, so an external cron job runs
// this instead.
//
// Usage:
//
//	cleanup [--dry-run]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres/orphan"
	"github.com/heartmarshall/retroboard-backend/internal/app"
	"github.com/heartmarshall/retroboard-backend/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "count orphaned rows without deleting them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := orphan.New(pool, postgres.NewTxManager(pool))

	res, err := repo.Purge(ctx, *dryRun)
	if err != nil {
		logger.Error("orphan purge failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("orphan purge completed",
		slog.Bool("dry_run", *dryRun),
		slog.Int64("cards", res.Cards),
		slog.Int64("groups", res.Groups),
		slog.Int64("actions", res.Actions),
		slog.Int64("votes", res.Votes),
		slog.Int64("comments", res.Comments),
		slog.Int64("total", res.Total()),
	)
}
