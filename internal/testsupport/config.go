package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"pgnsplit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t             testing.TB
	baseDir       string
	cfg           *config.Config
	skipOutputDir bool
}

// NewConfig produces a config seeded with unique temp directories per test.
// The data and output directories exist unless WithoutOutputDir is given.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Dataset = "fixture"
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.OutputDir = filepath.Join(base, "tests", "games")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Catalog.Path = filepath.Join(base, "state", "catalog.db")
	cfgVal.Split.WriteConcurrency = 4

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	dirs := []string{cfgVal.Paths.DataDir}
	if !builder.skipOutputDir {
		dirs = append(dirs, cfgVal.Paths.OutputDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	return builder.cfg
}

// WithDataset overrides the dataset identifier on the test config.
func WithDataset(dataset string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Dataset = dataset
	}
}

// WithoutOutputDir leaves the output directory uncreated.
func WithoutOutputDir() ConfigOption {
	return func(b *configBuilder) {
		b.skipOutputDir = true
	}
}

// WithCatalog enables the fixture catalog.
func WithCatalog() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.Enabled = true
	}
}
