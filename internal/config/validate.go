package config

import (
	"errors"
	"fmt"
	"strings"

	"pgnsplit/internal/textcodec"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := ValidateDataset(c.Dataset); err != nil {
		return err
	}
	if err := c.validateSplit(); err != nil {
		return err
	}
	return c.validateLogging()
}

// ValidateDataset rejects identifiers that would escape the data or output
// directories when turned into file names.
func ValidateDataset(dataset string) error {
	switch {
	case strings.TrimSpace(dataset) == "":
		return errors.New("dataset must be set")
	case dataset == "." || dataset == "..":
		return fmt.Errorf("dataset %q is not a valid file name", dataset)
	case strings.ContainsAny(dataset, `/\`):
		return fmt.Errorf("dataset %q must not contain path separators", dataset)
	}
	return nil
}

func (c *Config) validateSplit() error {
	if !textcodec.Supported(c.Split.Encoding) {
		return fmt.Errorf("split.encoding: unsupported value %q (expected one of %s)", c.Split.Encoding, strings.Join(textcodec.Names(), ", "))
	}
	if c.Split.WriteConcurrency < 0 {
		return errors.New("split.write_concurrency must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
