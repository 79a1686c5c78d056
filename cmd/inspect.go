package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/asciiref/internal/importer"
	"github.com/VoxDroid/asciiref/internal/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the rows stored in an export file",
	Long: "Read a file written by 'asciiref export' and print its rows in stored order.\n" +
		"The format is taken from the extension (.db, .yaml, .toml, .msgpack).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := importer.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		opts := renderOptions(cmd)
		opts.ShowScores = true
		out := cmd.OutOrStdout()
		q := doc.Query
		if q == "" {
			q = "(none)"
		}
		fmt.Fprintf(out, "query: %s • mode: %s • exported: %s • %d rows\n", q, doc.Mode, doc.ExportedAt, len(doc.Rows))
		if len(doc.Rows) > 0 {
			fmt.Fprintln(out, render.Table(importer.Results(doc), opts))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("control", true, "Include control characters (0-31, 127)")
	rootCmd.AddCommand(inspectCmd)
}
