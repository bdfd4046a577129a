package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"pgnsplit/internal/config"
	"pgnsplit/internal/logging"
	"pgnsplit/internal/textcodec"
)

type globalFlags struct {
	configPath string
	dataset    string
	dataDir    string
	outputDir  string
	encoding   string
	strict     bool
	logLevel   string
	logFormat  string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cmd, cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

// applyFlags layers explicitly set flags over the loaded configuration.
func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("dataset") {
		cfg.Dataset = strings.TrimSpace(c.flags.dataset)
	}
	if changed("data-dir") {
		dir, err := config.ExpandPath(c.flags.dataDir)
		if err != nil {
			return fmt.Errorf("--data-dir: %w", err)
		}
		cfg.Paths.DataDir = dir
	}
	if changed("output-dir") {
		dir, err := config.ExpandPath(c.flags.outputDir)
		if err != nil {
			return fmt.Errorf("--output-dir: %w", err)
		}
		cfg.Paths.OutputDir = dir
	}
	if changed("encoding") {
		cfg.Split.Encoding = textcodec.Canonical(c.flags.encoding)
	}
	if changed("strict") {
		cfg.Split.Strict = c.flags.strict
	}
	if changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(c.flags.logLevel))
	}
	if changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(c.flags.logFormat))
	}
	return nil
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
