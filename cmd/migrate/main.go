// Command migrate applies or inspects the embedded schema migrations.
//
// Usage: migrate [up|down|status]   (default: up)
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/app"
	"github.com/heartmarshall/library-backend/internal/config"
)

func main() {
	flag.Usage = func() { fmt.Fprintln(flag.CommandLine.Output(), errUsage) }
	flag.Parse()

	command, err := parseCommand(flag.Args())
	if err != nil {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	migrator, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer migrator.Close() //nolint:errcheck

	if err := run(ctx, command, migrator, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		migrator.Close() //nolint:errcheck
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: migrate [up|down|status]")

// parseCommand returns the subcommand, defaulting to up. It runs before any
// config or database access.
func parseCommand(args []string) (string, error) {
	if len(args) == 0 {
		return "up", nil
	}
	if len(args) > 1 {
		return "", errUsage
	}
	switch args[0] {
	case "up", "down", "status":
		return args[0], nil
	}
	return "", errUsage
}

func run(ctx context.Context, command string, m *postgres.Migrator, logger *slog.Logger) error {
	switch command {
	case "up":
		applied, err := m.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", len(applied)), slog.Any("versions", applied))
	case "down":
		version, err := m.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("migration rolled back", slog.Int64("version", version))
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s  %s\n", s.Version, state, s.Path)
		}
	default:
		return errUsage
	}
	return nil
}
