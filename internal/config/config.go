// Package config loads the consolidator and API server configuration from a
// YAML file with environment variable overrides and .env support.
package config

import (
	"fmt"
	"strconv"
	"time"
)

// Default configuration values.
const (
	defaultServiceName      = "expert-finder"
	defaultServiceVersion   = "1.0.0"
	defaultMongoURI         = "mongodb://localhost:27017"
	defaultTargetDatabase   = "expert_finder_unified"
	defaultTargetCollection = "speakers"
	defaultMongoTimeoutSec  = 30
	defaultBatchSize        = 1000
	defaultThreshold        = 85
	defaultServerPort       = 8080
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
)

// Config holds all configuration for the expert-finder services.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// MongoConfig holds the connection and target-collection settings. The same
// cluster hosts the per-source scrape databases and the unified target.
type MongoConfig struct {
	URI              string        `env:"MONGO_URI"          yaml:"uri"`
	TargetDatabase   string        `env:"TARGET_DB"          yaml:"target_database"`
	TargetCollection string        `env:"TARGET_COLLECTION"  yaml:"target_collection"`
	Timeout          time.Duration `yaml:"timeout"`
}

// PipelineConfig holds batch-run settings.
type PipelineConfig struct {
	// Sources lists the per-source databases to consolidate, in processing
	// order. Empty means the built-in default set.
	Sources             []SourceConfig `yaml:"sources"`
	BatchSize           int            `env:"BATCH_SIZE"           yaml:"batch_size"`
	SimilarityThreshold int            `env:"SIMILARITY_THRESHOLD" yaml:"similarity_threshold"`
}

// SourceConfig names one source database and the collections to read from it.
type SourceConfig struct {
	Name        string   `yaml:"name"`
	Database    string   `yaml:"database"`
	Collections []string `yaml:"collections"`
}

// ServerConfig holds the query API server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `env:"HTTP_PORT" yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration for unusable values.
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("config: mongo uri is required")
	}
	if c.Pipeline.BatchSize <= 0 {
		return fmt.Errorf("config: batch size must be positive, got %d", c.Pipeline.BatchSize)
	}
	if c.Pipeline.SimilarityThreshold < 0 || c.Pipeline.SimilarityThreshold > 100 {
		return fmt.Errorf("config: similarity threshold must be 0-100, got %d", c.Pipeline.SimilarityThreshold)
	}
	for _, src := range c.Pipeline.Sources {
		if src.Name == "" || src.Database == "" {
			return fmt.Errorf("config: source entries need a name and database")
		}
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}

	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = defaultMongoURI
	}
	if cfg.Mongo.TargetDatabase == "" {
		cfg.Mongo.TargetDatabase = defaultTargetDatabase
	}
	if cfg.Mongo.TargetCollection == "" {
		cfg.Mongo.TargetCollection = defaultTargetCollection
	}
	if cfg.Mongo.Timeout == 0 {
		cfg.Mongo.Timeout = defaultMongoTimeoutSec * time.Second
	}

	if cfg.Pipeline.BatchSize == 0 {
		cfg.Pipeline.BatchSize = defaultBatchSize
	}
	if cfg.Pipeline.SimilarityThreshold == 0 {
		cfg.Pipeline.SimilarityThreshold = defaultThreshold
	}
	if len(cfg.Pipeline.Sources) == 0 {
		cfg.Pipeline.Sources = DefaultSources()
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
}

// DefaultSources is the full set of scrape databases the pipeline
// consolidates when the config does not narrow it down.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{Name: "a_speakers", Database: "a_speakers", Collections: []string{"speakers"}},
		{Name: "allamericanspeakers", Database: "allamericanspeakers", Collections: []string{"speakers"}},
		{Name: "bigspeak", Database: "bigspeak_scraper", Collections: []string{"speakers"}},
		{Name: "eventraptor", Database: "eventraptor", Collections: []string{"speakers"}},
		{Name: "freespeakerbureau", Database: "freespeakerbureau_scraper", Collections: []string{"speakers"}},
		{Name: "leading_authorities", Database: "leading_authorities", Collections: []string{"speakers"}},
		{Name: "sessionize", Database: "sessionize_scraper", Collections: []string{"speakers"}},
		{Name: "speakerhub", Database: "speakerhub_scraper", Collections: []string{"speakers"}},
		{Name: "thespeakerhandbook", Database: "thespeakerhandbook_scraper", Collections: []string{"speakers"}},
		{Name: "llm_parsed", Database: "llm_parsed_db", Collections: []string{"cat_1", "cat_2", "cat_3", "cat_4"}},
	}
}
