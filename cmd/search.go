package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/query"
	"github.com/VoxDroid/asciiref/internal/render"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Rank the table against a query",
	Long: "Rank the table against a query and print the matching rows, best first.\n" +
		"Arguments are joined with a single space. Examples:\n  asciiref search esc\n  asciiref search 0x41",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.Join(args, " ")
		limit, _ := cmd.Flags().GetInt("limit")
		opts := renderOptions(cmd)
		if !cmd.Flags().Changed("scores") {
			opts.ShowScores = true
		}

		results := query.Evaluate(charset.New(), raw)
		rows := render.Rows(results, opts)
		log.Debug("evaluated query", "query", raw, "mode", query.Parse(raw).Mode, "matches", len(rows))

		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintf(out, "no matches for %q\n", raw)
			return nil
		}
		shown := len(rows)
		if limit > 0 && shown > limit {
			shown = limit
		}
		fmt.Fprintf(out, "mode: %s • showing %d of %d matches\n", query.Parse(raw).Mode, shown, len(rows))
		fmt.Fprintln(out, render.Table(rows[:shown], opts))
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("limit", 0, "Show at most this many rows (0 for all)")
	searchCmd.Flags().Bool("control", true, "Include control characters (0-31, 127)")
	searchCmd.Flags().Bool("scores", true, "Show the score column")
	rootCmd.AddCommand(searchCmd)
}
