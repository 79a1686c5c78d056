package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/VoxDroid/asciiref/internal/query"
)

// Options control how a result set is drawn.
type Options struct {
	ShowScores   bool
	ShowControl  bool
	HighContrast bool
}

// Rows applies the view model: hidden rows are dropped, the rest keep their
// display order. Control rows are dropped when ShowControl is false.
func Rows(results []query.Result, opts Options) []query.Result {
	out := make([]query.Result, 0, len(results))
	for _, r := range results {
		if !r.Visible {
			continue
		}
		if !opts.ShowControl && r.Record.IsControl() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Headers returns the column titles for opts.
func Headers(opts Options) []string {
	h := []string{"Char", "Dec", "Hex", "Oct", "Bin"}
	if opts.ShowScores {
		h = append(h, "Score")
	}
	return h
}

// Cells returns the text of one row.
func Cells(r query.Result, opts Options) []string {
	rec := r.Record
	c := []string{rec.Char, rec.Decimal, rec.Hex, rec.Octal, rec.Binary}
	if opts.ShowScores {
		c = append(c, strconv.Itoa(r.Score))
	}
	return c
}

// Table renders the visible results as a bordered table. Highlighted rows use
// the theme accent.
func Table(results []query.Result, opts Options) string {
	theme := ThemeFor(opts.HighContrast)
	rows := Rows(results, opts)

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = Cells(r, opts)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))).
		Headers(Headers(opts)...).
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.header()
			case row >= 0 && row < len(rows) && rows[row].Highlighted:
				return theme.highlight()
			}
			return theme.cell()
		})
	return t.String()
}
