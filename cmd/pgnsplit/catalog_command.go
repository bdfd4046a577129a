package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pgnsplit/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the fixture catalog",
	}
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged fixtures for the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			if !cfg.Catalog.Enabled {
				return errors.New("catalog is disabled; set catalog.enabled = true or PGNSPLIT_CATALOG=true")
			}
			store, err := catalog.Open(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			dataset := cfg.Dataset
			if all {
				dataset = ""
			}
			entries, err := store.List(cmd.Context(), dataset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No cataloged fixtures")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Dataset,
					strconv.Itoa(e.Index),
					e.Path,
					strconv.Itoa(e.Bytes),
					shortHash(e.SHA256),
					e.WrittenAt.Local().Format(time.DateTime),
				})
			}
			writeTable(out,
				[]string{"Dataset", "#", "Path", "Bytes", "SHA-256", "Written"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignLeft, alignLeft},
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every dataset instead of the configured one")
	return cmd
}

func shortHash(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
