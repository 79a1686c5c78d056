package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/query"
	"github.com/VoxDroid/asciiref/internal/render"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the full ASCII reference table",
	Long:  "Print all 128 ASCII characters in code point order. Example:\n  asciiref table --control=false",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := renderOptions(cmd)
		results := query.Evaluate(charset.New(), "")
		fmt.Fprintln(cmd.OutOrStdout(), render.Table(results, opts))
		return nil
	},
}

// renderOptions merges the display flags of cmd over the loaded config.
func renderOptions(cmd *cobra.Command) render.Options {
	opts := render.Options{
		ShowScores:   cfg.UI.ShowScores,
		ShowControl:  cfg.UI.ShowControl,
		HighContrast: cfg.UI.HighContrast,
	}
	if f := cmd.Flags().Lookup("scores"); f != nil && f.Changed {
		opts.ShowScores, _ = cmd.Flags().GetBool("scores")
	}
	if f := cmd.Flags().Lookup("control"); f != nil && f.Changed {
		opts.ShowControl, _ = cmd.Flags().GetBool("control")
	}
	return opts
}

func init() {
	tableCmd.Flags().Bool("control", true, "Include control characters (0-31, 127)")
	tableCmd.Flags().Bool("scores", false, "Show the score column")
	rootCmd.AddCommand(tableCmd)
}
