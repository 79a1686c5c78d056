package query

import (
	"cmp"
	"slices"

	"github.com/VoxDroid/asciiref/internal/charset"
)

// Result is the outcome of a query for one record.
type Result struct {
	Record      charset.Record
	Score       int
	Visible     bool
	Highlighted bool
	// Rank is the record's position in the display order returned by Evaluate.
	Rank int
}

// View is the per-record instruction handed to a rendering layer.
type View struct {
	Visible     bool
	Highlighted bool
	Rank        int
}

// Evaluate scores every record of t against raw and returns them in display
// order: matching rows by descending score (ties keep code point order),
// followed by hidden rows in code point order. An empty query shows every
// row, unhighlighted, in code point order.
func Evaluate(t *charset.Table, raw string) []Result {
	q := Parse(raw)
	records := t.Records()
	out := make([]Result, len(records))

	if q.Empty() {
		for i, r := range records {
			out[i] = Result{Record: r, Visible: true, Rank: i}
		}
		return out
	}

	for i, r := range records {
		s := Score(r, q)
		out[i] = Result{Record: r, Score: s, Visible: s > 0, Highlighted: s > 0}
	}
	slices.SortStableFunc(out, func(a, b Result) int {
		return cmp.Compare(b.Score, a.Score)
	})
	for i := range out {
		out[i].Rank = i
	}
	return out
}

// Visible returns the visible results, keeping their order.
func Visible(results []Result) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out
}

// ViewModel indexes results by code point.
func ViewModel(results []Result) []View {
	views := make([]View, charset.Size)
	for _, r := range results {
		cp := r.Record.CodePoint
		if cp < 0 || cp >= len(views) {
			continue
		}
		views[cp] = View{Visible: r.Visible, Highlighted: r.Highlighted, Rank: r.Rank}
	}
	return views
}
