package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "pgnsplit",
		Short:         "Split a PGN collection into one fixture file per game",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	pf.StringVarP(&flags.dataset, "dataset", "d", "", "Dataset identifier (overrides DATASET)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "Directory holding <dataset>.pgn")
	pf.StringVarP(&flags.outputDir, "output-dir", "o", "", "Directory receiving one file per game")
	pf.StringVar(&flags.encoding, "encoding", "", "Input encoding (utf-8, latin1, windows-1252)")
	pf.BoolVar(&flags.strict, "strict", false, "Fail when the last block has no partner")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newSplitCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newPreflightCommand(ctx))
	rootCmd.AddCommand(newCatalogCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
