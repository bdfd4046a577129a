package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pgnsplit/internal/splitter"
)

const previewWidth = 48

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show how the input would be split without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			plan, err := splitter.BuildPlan(cfg.InputPath(), cfg.Split.Encoding, cfg.Split.Strict)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(plan.Games))
			for _, game := range plan.Games {
				rows = append(rows, []string{
					strconv.Itoa(game.Index),
					game.FileName(cfg.Dataset),
					strconv.Itoa(len(game.Segments)),
					strconv.Itoa(len(game.Text())),
					yesNo(game.Partial()),
					preview(game),
				})
			}

			out := cmd.OutOrStdout()
			writeTable(out,
				[]string{"#", "File", "Blocks", "Bytes", "Partial", "First line"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
			)
			fmt.Fprintf(out, "%d blocks, %d games from %s\n", len(plan.Segments), len(plan.Games), plan.InputPath)
			return nil
		},
	}
}

func preview(game splitter.Game) string {
	line := game.FirstLine()
	if runes := []rune(line); len(runes) > previewWidth {
		line = string(runes[:previewWidth-1]) + "…"
	}
	return line
}
