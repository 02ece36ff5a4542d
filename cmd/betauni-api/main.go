package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/betauni/betauni/internal/config"
	"github.com/betauni/betauni/internal/logger"
	"github.com/betauni/betauni/internal/router"
	"github.com/betauni/betauni/internal/setup"
)

func main() {
	// Secrets may come from a local .env during development.
	_ = godotenv.Load()

	var configFolder string
	var migrationsPath string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&migrationsPath, "migrations_path", "migrations", "path to folder with sql migrations")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	deps, err := setup.SetupDependencies(cfg, migrationsPath)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Log.Info("starting server", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
