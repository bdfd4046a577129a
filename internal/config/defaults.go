package config

import "pgnsplit/internal/textcodec"

const (
	defaultDataset   = "twic1413"
	defaultDataDir   = "./data"
	defaultOutputDir = "./tests/games"
	defaultStateDir  = "~/.local/state/pgnsplit"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
	catalogFileName  = "catalog.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Dataset: defaultDataset,
		Paths: Paths{
			DataDir:   defaultDataDir,
			OutputDir: defaultOutputDir,
			StateDir:  defaultStateDir,
		},
		Split: Split{
			Encoding:     textcodec.DefaultEncoding,
			AtomicWrites: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
