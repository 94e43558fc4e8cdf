package main

import (
	"log/slog"
	"os"

	"github.com/tzuhao-hung/expense-tracker/internal/config"
	"github.com/tzuhao-hung/expense-tracker/internal/router"
	"github.com/tzuhao-hung/expense-tracker/internal/storage/sqlite"
	"github.com/tzuhao-hung/expense-tracker/pkg/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	r := router.New(store, cfg.Server.Mode)

	slog.Info("Starting server", "addr", cfg.Addr(), "db", cfg.Database.Path)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
