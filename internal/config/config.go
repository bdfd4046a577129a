package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input, output, and state directory configuration.
type Paths struct {
	DataDir   string `toml:"data_dir" env:"PGNSPLIT_DATA_DIR"`
	OutputDir string `toml:"output_dir" env:"PGNSPLIT_OUTPUT_DIR"`
	StateDir  string `toml:"state_dir" env:"PGNSPLIT_STATE_DIR"`
}

// Split contains configuration for segmenting, pairing, and writing games.
type Split struct {
	Encoding     string `toml:"encoding" env:"PGNSPLIT_ENCODING"`
	Strict       bool   `toml:"strict" env:"PGNSPLIT_STRICT"`
	AtomicWrites bool   `toml:"atomic_writes" env:"PGNSPLIT_ATOMIC_WRITES"`
	// WriteConcurrency bounds parallel file writes. Zero means one per CPU.
	WriteConcurrency int `toml:"write_concurrency" env:"PGNSPLIT_WRITE_CONCURRENCY"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" env:"PGNSPLIT_LOG_FORMAT"`
	Level  string `toml:"level" env:"PGNSPLIT_LOG_LEVEL"`
}

// Catalog contains configuration for the optional SQLite fixture catalog.
type Catalog struct {
	Enabled bool   `toml:"enabled" env:"PGNSPLIT_CATALOG"`
	Path    string `toml:"path" env:"PGNSPLIT_CATALOG_PATH"`
}

// Config encapsulates all configuration values for pgnsplit.
//
// Configuration sections by subsystem:
//   - Dataset: selects the input file and the output file prefix
//   - Paths: data, output, and state directories
//   - Split: input encoding, pairing strictness, write behaviour
//   - Logging: log format and level
//   - Catalog: SQLite record of written fixtures
type Config struct {
	Dataset string  `toml:"dataset" env:"DATASET"`
	Paths   Paths   `toml:"paths"`
	Split   Split   `toml:"split"`
	Logging Logging `toml:"logging"`
	Catalog Catalog `toml:"catalog"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/pgnsplit/config.toml")
}

// Load locates, parses, and validates a configuration file, then applies
// .env and environment overrides. The returned config has all path fields
// expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, "", false, err
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, "", false, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// loadDotEnv reads .env from the working directory when present. Variables
// already set in the process environment win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("pgnsplit.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// InputPath returns the PGN file read for the configured dataset.
func (c *Config) InputPath() string {
	return filepath.Join(c.Paths.DataDir, c.Dataset+".pgn")
}

// EnsureStateDir creates the state directory that holds run locks and the
// catalog database. The output directory is never created here.
func (c *Config) EnsureStateDir() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	if c.Catalog.Enabled {
		if dir := filepath.Dir(c.Catalog.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create catalog directory %q: %w", dir, err)
			}
		}
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
