package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"caramello/internal/app/database"
	"caramello/internal/app/server"
	"caramello/internal/config"
)

func main() {
	configPath := flag.String("config", "", "JSON config file (default "+config.DefaultFile+" when present)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(*configPath); err != nil {
		slog.Error("caramello api stopped", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	url := cfg.DatabaseURL()
	db, err := database.Open(url, cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	backend := "sqlite:" + cfg.SQLitePath
	if url != "" {
		backend = "postgres"
	}
	slog.Info("starting caramello api", "addr", ":"+cfg.Port, "db", backend)
	return server.Run(":"+cfg.Port, db)
}
