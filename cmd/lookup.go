package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/lookup"
	"github.com/VoxDroid/asciiref/internal/render"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <glyph|mnemonic|number>",
	Short: "Show details for one character",
	Long: "Show details for one character. The token may be a single glyph, a control\n" +
		"mnemonic such as ESC, or a number (65, 0x41, 0o101, 0b1000001).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := lookup.NewResolver(charset.New())
		rec, err := r.Resolve(args[0])
		if err != nil {
			hints := suggestionNames(r, args[0])
			if len(hints) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "did you mean: %s\n", strings.Join(hints, ", "))
			}
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Card(rec, cfg.UI.HighContrast))
		return nil
	},
}

// suggestionNames merges prefix completions and fuzzy suggestions without
// duplicates, completions first.
func suggestionNames(r *lookup.Resolver, token string) []string {
	seen := map[int]bool{}
	var names []string
	add := func(recs []charset.Record) {
		for _, rec := range recs {
			if seen[rec.CodePoint] {
				continue
			}
			seen[rec.CodePoint] = true
			names = append(names, rec.Char)
		}
	}
	add(r.Complete(token))
	add(r.Suggest(token, 3))
	return names
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
