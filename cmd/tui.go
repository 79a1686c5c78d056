package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/asciiref/cmd/tui/ui"
	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/exporter"
	"github.com/VoxDroid/asciiref/internal/logger"
	"github.com/VoxDroid/asciiref/internal/tui/adapters"
	modelpkg "github.com/VoxDroid/asciiref/internal/tui/model"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive reference table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := exporter.ParseFormat(cfg.Export.Format)
		if err != nil {
			return err
		}
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		uiModel := modelpkg.New(charset.New(), adapters.NewExportAdapter(f, cwd))
		if q, _ := cmd.Flags().GetString("query"); q != "" {
			uiModel.SetQuery(q)
		}

		// log lines would corrupt the alt screen
		restore := logger.Silence(io.Discard)
		defer restore()

		p := ui.NewProgram(uiModel, ui.Options{
			HighContrast: cfg.UI.HighContrast,
			ShowScores:   cfg.UI.ShowScores,
			ShowControl:  cfg.UI.ShowControl,
		})
		_, err = p.Run()
		return err
	},
}

func init() {
	tuiCmd.Flags().StringP("query", "q", "", "Initial query")
	rootCmd.AddCommand(tuiCmd)
}
