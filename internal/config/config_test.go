package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("unexpected mongo uri: %q", cfg.Mongo.URI)
	}
	if cfg.Pipeline.BatchSize != 1000 {
		t.Errorf("unexpected batch size: %d", cfg.Pipeline.BatchSize)
	}
	if cfg.Pipeline.SimilarityThreshold != 85 {
		t.Errorf("unexpected threshold: %d", cfg.Pipeline.SimilarityThreshold)
	}
	if len(cfg.Pipeline.Sources) != 10 {
		t.Errorf("unexpected default source count: %d", len(cfg.Pipeline.Sources))
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
mongo:
  target_database: custom_db
pipeline:
  batch_size: 250
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MONGO_URI", "mongodb://example:27017")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.TargetDatabase != "custom_db" {
		t.Errorf("yaml value not applied: %q", cfg.Mongo.TargetDatabase)
	}
	if cfg.Pipeline.BatchSize != 250 {
		t.Errorf("yaml batch size not applied: %d", cfg.Pipeline.BatchSize)
	}
	if cfg.Mongo.URI != "mongodb://example:27017" {
		t.Errorf("env override not applied: %q", cfg.Mongo.URI)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}

	cfg.Pipeline.SimilarityThreshold = 200
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range threshold")
	}

	cfg = &Config{}
	setDefaults(cfg)
	cfg.Pipeline.Sources = []SourceConfig{{Name: "x"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for source without database")
	}
}
