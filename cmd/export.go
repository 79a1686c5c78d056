package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/exporter"
	"github.com/VoxDroid/asciiref/internal/query"
)

var exportCmd = &cobra.Command{
	Use:   "export [dst]",
	Short: "Export the visible rows to a portable file",
	Long: "Export the rows visible for --query, in display order, to a SQLite database,\n" +
		"YAML, TOML or MessagePack file. Without dst a dated file name is used in the\n" +
		"current directory, e.g. asciiref-2024-05-01.db. Examples:\n" +
		"  asciiref export --query esc\n  asciiref export letters.yaml --format yaml --query 0x6",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		if !cmd.Flags().Changed("format") {
			formatName = cfg.Export.Format
		}
		f, err := exporter.ParseFormat(formatName)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetString("query")
		force, _ := cmd.Flags().GetBool("force")

		now := time.Now()
		dst := exporter.DefaultPath(".", f, now)
		if len(args) == 1 {
			dst = args[0]
		}
		log.Debug("exporting", "dst", dst, "format", f, "query", raw)

		results := query.Evaluate(charset.New(), raw)
		opts := exporter.Options{Query: raw, Format: f, Force: force, Now: func() time.Time { return now }}
		if err := exporter.Export(cmd.Context(), results, dst, opts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s\n", len(query.Visible(results)), dst)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", string(exporter.FormatSQLite), "Output format: sqlite, yaml, toml, msgpack (default from config)")
	exportCmd.Flags().StringP("query", "q", "", "Only export rows matching this query")
	exportCmd.Flags().Bool("force", false, "Overwrite an existing destination")
	rootCmd.AddCommand(exportCmd)
}
