package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/machipost-dev/machipost/internal/config"
	"github.com/machipost-dev/machipost/internal/logger"
	"github.com/machipost-dev/machipost/internal/router"
	"github.com/machipost-dev/machipost/internal/setup"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 30 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.SetupRouter(deps)

	server := &http.Server{
		Addr:         cfg.Public.Addr,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logger.Log.Info("server started", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
