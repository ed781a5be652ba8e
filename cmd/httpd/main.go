// Command httpd serves the speaker query API over the unified collection.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itsmudassir/expert-finder/internal/api"
	"github.com/itsmudassir/expert-finder/internal/config"
	"github.com/itsmudassir/expert-finder/internal/logging"
	"github.com/itsmudassir/expert-finder/internal/storage"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", config.GetConfigPath("config.yml"), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Must(logging.Config{}).Fatal("load config", logging.Error(err))
	}

	logger := logging.Must(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	defer logger.Sync() //nolint:errcheck

	client, err := storage.Connect(cfg.Mongo)
	if err != nil {
		logger.Fatal("mongo connect", logging.Error(err))
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	store := storage.New(client, cfg.Mongo, logger)
	handler := api.NewHandler(store, logger, cfg.Service.Version)
	server := api.NewServer(handler, cfg.Server, logger)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("query api listening", logging.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", logging.Error(err))
			os.Exit(1)
		}
	case sig := <-shutdown:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", logging.Error(err))
			os.Exit(1)
		}
		logger.Info("server stopped")
	}
}
