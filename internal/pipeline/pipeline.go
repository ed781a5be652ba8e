// Package pipeline orchestrates a consolidation run: read every configured
// source, build profiles, resolve duplicate identities, and replace the
// unified collection.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/itsmudassir/expert-finder/internal/domain"
	"github.com/itsmudassir/expert-finder/internal/logging"
	"github.com/itsmudassir/expert-finder/internal/profile"
	"github.com/itsmudassir/expert-finder/internal/resolver"
)

// Source streams the raw records of one source database.
type Source interface {
	Name() string
	Each(ctx context.Context, fn func(domain.Record) error) error
}

// Sink receives the consolidated profiles.
type Sink interface {
	Replace(ctx context.Context, profiles []*domain.Profile, batchSize int) (int, error)
	EnsureIndexes(ctx context.Context) error
}

// Pipeline runs one consolidation pass end to end.
type Pipeline struct {
	sources  []Source
	factory  *profile.Factory
	resolver *resolver.Resolver
	sink     Sink

	batchSize int
	logger    logging.Logger
	metrics   *Metrics
	now       func() time.Time
}

// Options configures a pipeline.
type Options struct {
	Sources             []Source
	Sink                Sink
	BatchSize           int
	SimilarityThreshold int
	Logger              logging.Logger
	Metrics             *Metrics
}

// New builds a pipeline. A nil Metrics disables instrumentation.
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		sources:   opts.Sources,
		factory:   profile.NewFactory(),
		resolver:  resolver.New(opts.SimilarityThreshold),
		sink:      opts.Sink,
		batchSize: opts.BatchSize,
		logger:    logger,
		metrics:   opts.Metrics,
		now:       time.Now,
	}
}

// Run executes one full consolidation and returns the run report. A failed
// source read or bulk write aborts the run; the target collection is only
// touched once every source has been ingested.
func (p *Pipeline) Run(ctx context.Context) (*domain.RunStats, error) {
	stats := &domain.RunStats{
		RunID:     uuid.NewString(),
		StartedAt: p.now(),
	}
	p.logger.Info("consolidation run starting",
		logging.String("run_id", stats.RunID),
		logging.Int("sources", len(p.sources)),
	)

	for _, src := range p.sources {
		srcStats, err := p.ingest(ctx, src)
		stats.Add(srcStats)
		if err != nil {
			return stats, fmt.Errorf("ingest source %s: %w", src.Name(), err)
		}
	}

	profiles, err := p.resolver.Resolve()
	if err != nil {
		return stats, fmt.Errorf("resolve identities: %w", err)
	}
	stats.DuplicatesMerged = p.resolver.MergedCount()
	stats.FinalProfiles = len(profiles)
	if p.metrics != nil {
		p.metrics.FinalProfiles.Set(float64(len(profiles)))
	}

	p.logger.Info("identities resolved",
		logging.Int("profiles", len(profiles)),
		logging.Int("duplicates_merged", stats.DuplicatesMerged),
	)

	writeStart := p.now()
	written, err := p.sink.Replace(ctx, profiles, p.batchSize)
	if p.metrics != nil {
		p.metrics.WriteDuration.Observe(p.now().Sub(writeStart).Seconds())
	}
	stats.Written = written
	if err != nil {
		return stats, fmt.Errorf("write profiles: %w", err)
	}

	if err := p.sink.EnsureIndexes(ctx); err != nil {
		return stats, fmt.Errorf("ensure indexes: %w", err)
	}

	stats.Elapsed = p.now().Sub(stats.StartedAt)
	p.logger.Info("consolidation run finished",
		logging.String("run_id", stats.RunID),
		logging.Int("processed", stats.TotalProcessed),
		logging.Int("skipped", stats.TotalSkipped),
		logging.Int("merged", stats.DuplicatesMerged),
		logging.Int("written", stats.Written),
		logging.Duration("elapsed", stats.Elapsed),
	)
	return stats, nil
}

func (p *Pipeline) ingest(ctx context.Context, src Source) (domain.SourceStats, error) {
	name := src.Name()
	srcStats := domain.SourceStats{Source: name}
	start := p.now()

	p.logger.Info("reading source", logging.String("source", name))

	err := src.Each(ctx, func(rec domain.Record) error {
		prof, buildErr := p.factory.Build(name, rec)
		if errors.Is(buildErr, profile.ErrNoName) {
			srcStats.Skipped++
			if p.metrics != nil {
				p.metrics.RecordsSkipped.WithLabelValues(name).Inc()
			}
			return nil
		}
		if buildErr != nil {
			srcStats.Errors++
			if p.metrics != nil {
				p.metrics.RecordsFailed.WithLabelValues(name).Inc()
			}
			p.logger.Warn("record failed",
				logging.String("source", name),
				logging.Error(buildErr),
			)
			return nil
		}

		merged, addErr := p.resolver.Add(prof)
		if addErr != nil {
			srcStats.Errors++
			return nil
		}
		srcStats.Processed++
		if merged {
			srcStats.Merged++
			if p.metrics != nil {
				p.metrics.ProfilesMerged.Inc()
			}
		} else {
			srcStats.Created++
		}
		if p.metrics != nil {
			p.metrics.RecordsProcessed.WithLabelValues(name).Inc()
		}
		return nil
	})

	if p.metrics != nil {
		p.metrics.SourceDuration.WithLabelValues(name).Observe(p.now().Sub(start).Seconds())
	}
	p.logger.Info("source done",
		logging.String("source", name),
		logging.Int("processed", srcStats.Processed),
		logging.Int("skipped", srcStats.Skipped),
		logging.Int("merged", srcStats.Merged),
		logging.Int("errors", srcStats.Errors),
	)
	return srcStats, err
}
