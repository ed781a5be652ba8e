// Command consolidator runs one full consolidation pass: it reads every
// configured source database, resolves duplicate identities, and replaces
// the unified speaker collection.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmudassir/expert-finder/internal/config"
	"github.com/itsmudassir/expert-finder/internal/logging"
	"github.com/itsmudassir/expert-finder/internal/pipeline"
	"github.com/itsmudassir/expert-finder/internal/source"
	"github.com/itsmudassir/expert-finder/internal/storage"
)

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := storage.Connect(cfg.Mongo)
	if err != nil {
		logger.Fatal("mongo connect", logging.Error(err))
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	readers := source.NewReaders(client, cfg.Pipeline.Sources)
	sources := make([]pipeline.Source, 0, len(readers))
	for _, r := range readers {
		sources = append(sources, r)
	}

	store := storage.New(client, cfg.Mongo, logger)

	p := pipeline.New(pipeline.Options{
		Sources:             sources,
		Sink:                store,
		BatchSize:           cfg.Pipeline.BatchSize,
		SimilarityThreshold: cfg.Pipeline.SimilarityThreshold,
		Logger:              logger,
		Metrics:             pipeline.NewMetrics(),
	})

	stats, err := p.Run(ctx)
	if err != nil {
		logger.Error("run failed",
			logging.String("run_id", stats.RunID),
			logging.Error(err),
		)
		os.Exit(1)
	}

	for _, src := range stats.Sources {
		logger.Info("source summary",
			logging.String("source", src.Source),
			logging.Int("processed", src.Processed),
			logging.Int("created", src.Created),
			logging.Int("merged", src.Merged),
			logging.Int("skipped", src.Skipped),
			logging.Int("errors", src.Errors),
		)
	}
	logger.Info("run summary",
		logging.String("run_id", stats.RunID),
		logging.Int("total_processed", stats.TotalProcessed),
		logging.Int("duplicates_merged", stats.DuplicatesMerged),
		logging.Int("final_profiles", stats.FinalProfiles),
		logging.Int("written", stats.Written),
		logging.Duration("elapsed", stats.Elapsed),
	)
}
