package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pgnsplit/internal/catalog"
	"pgnsplit/internal/config"
	"pgnsplit/internal/logging"
	"pgnsplit/internal/preflight"
	"pgnsplit/internal/splitter"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "Write one fixture file per game (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, ctx)
		},
	}
}

func runSplit(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}

	for _, r := range preflight.Failed(preflight.RunAll(cfg)) {
		logging.NewComponentLogger(logger, "preflight").Warn("check failed",
			logging.String("check", r.Name),
			logging.String("detail", r.Detail),
		)
	}

	opts := splitter.OptionsFromConfig(cfg)
	opts.Logger = logger

	store := openCatalog(cfg, logger)
	if store != nil {
		defer store.Close()
		opts.Recorder = store
	}

	report, err := splitter.Run(cmd.Context(), opts)
	if err != nil {
		// Run has already logged the failure.
		return &reportedError{err: err}
	}

	if store != nil {
		if _, err := store.Prune(cmd.Context(), report.Dataset, report.Games()); err != nil {
			logger.Warn("catalog prune failed", logging.Error(err))
		}
	}

	out := cmd.OutOrStdout()
	written := report.Games() - report.Failed()
	fmt.Fprintf(out, "Wrote %d of %d games from %s to %s\n", written, report.Games(), report.InputPath, report.OutputDir)
	return report.Err()
}

// openCatalog opens the fixture catalog when enabled. Failures are logged and
// the split proceeds without recording.
func openCatalog(cfg *config.Config, logger *slog.Logger) *catalog.Store {
	if !cfg.Catalog.Enabled {
		return nil
	}
	if err := cfg.EnsureStateDir(); err != nil {
		logger.Warn("catalog unavailable; continuing without it", logging.Error(err))
		return nil
	}
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		logger.Warn("catalog unavailable; continuing without it", logging.Error(err))
		return nil
	}
	return store
}
