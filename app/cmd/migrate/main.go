package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"backoffice-api/app/config"
	"backoffice-api/app/utils/database"
	"backoffice-api/app/utils/logger"
	"backoffice-api/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status)")
		steps   = flag.Int("steps", 1, "Number of steps for down migration")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.Open(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to open migration connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sqlFS, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		appLogger.Error("Failed to open embedded migrations", "error", err)
		os.Exit(1)
	}

	runner := migration.NewRunner(db, sqlFS, appLogger)

	switch *command {
	case "up":
		applied, err := runner.Up(ctx)
		if err != nil {
			appLogger.Error("Migration up failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("Schema is up to date", "applied", applied)

	case "down":
		rolledBack, err := runner.Down(ctx, *steps)
		if err != nil {
			appLogger.Error("Migration down failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("Migrations rolled back", "steps", rolledBack)

	case "status":
		statuses, err := runner.Statuses(ctx)
		if err != nil {
			appLogger.Error("Migration status failed", "error", err)
			os.Exit(1)
		}
		for _, s := range statuses {
			if s.Applied {
				appLogger.Info("applied",
					"version", s.Version,
					"name", s.Name,
					"applied_at", s.AppliedAt.Format(time.RFC3339))
			} else {
				appLogger.Info("pending", "version", s.Version, "name", s.Name)
			}
		}

	default:
		appLogger.Error("Unknown command", "command", *command)
		appLogger.Info("Available commands: up, down, status")
		os.Exit(1)
	}
}
