package query

import (
	"reflect"
	"testing"

	"github.com/VoxDroid/asciiref/internal/charset"
)

func codePoints(results []Result) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Record.CodePoint
	}
	return out
}

func TestEvaluateEmptyQueryShowsEverything(t *testing.T) {
	res := Evaluate(charset.New(), "")
	if len(res) != charset.Size {
		t.Fatalf("expected %d results, got %d", charset.Size, len(res))
	}
	for i, r := range res {
		if r.Record.CodePoint != i || r.Rank != i {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
		if !r.Visible || r.Highlighted || r.Score != 0 {
			t.Fatalf("empty query should show unhighlighted rows, got %+v", r)
		}
	}
}

func TestEvaluateLetterRanksGlyphFirst(t *testing.T) {
	res := Evaluate(charset.New(), "a")
	got := codePoints(res[:6])
	want := []int{65, 97, 6, 21, 24, 10}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("top rows for \"a\" = %v, want %v", got, want)
	}
	if res[0].Score != 1000 || !res[0].Visible || !res[0].Highlighted {
		t.Fatalf("unexpected first row: %+v", res[0])
	}
}

func TestEvaluateHexPrefixFindsSingleRow(t *testing.T) {
	res := Evaluate(charset.New(), "0x41")
	vis := Visible(res)
	if len(vis) != 1 {
		t.Fatalf("expected exactly one visible row, got %v", codePoints(vis))
	}
	if vis[0].Record.CodePoint != 65 || vis[0].Score != MaxPrefixed || vis[0].Rank != 0 {
		t.Fatalf("unexpected match: %+v", vis[0])
	}
	for _, r := range res[1:] {
		if r.Visible || r.Highlighted || r.Score != 0 {
			t.Fatalf("non-matching row should be hidden: %+v", r)
		}
	}
}

func TestEvaluateNumericQueryIsSortedAndStable(t *testing.T) {
	res := Evaluate(charset.New(), "1")
	if res[0].Record.CodePoint != 49 || res[0].Score != 1032 {
		t.Fatalf("expected '1' glyph first, got %+v", res[0])
	}
	if res[1].Record.CodePoint != 17 || res[1].Score != 582 {
		t.Fatalf("expected DC1 second, got %+v", res[1])
	}
	seenHidden := false
	for i, r := range res {
		if r.Rank != i {
			t.Fatalf("rank %d at position %d", r.Rank, i)
		}
		if r.Record.CodePoint == 1 && r.Score != 160 {
			t.Fatalf("score for code point 1 = %d, want 160", r.Score)
		}
		if i == 0 {
			continue
		}
		prev := res[i-1]
		if prev.Score < r.Score {
			t.Fatalf("scores not descending at %d: %d then %d", i, prev.Score, r.Score)
		}
		if prev.Score == r.Score && prev.Record.CodePoint > r.Record.CodePoint {
			t.Fatalf("tie at score %d not in code point order: %d before %d", r.Score, prev.Record.CodePoint, r.Record.CodePoint)
		}
		if !r.Visible {
			seenHidden = true
		} else if seenHidden {
			t.Fatalf("visible row %d after hidden rows", r.Record.CodePoint)
		}
	}
}

func TestEvaluateBarePrefixIsWeighted(t *testing.T) {
	if n := len(Visible(Evaluate(charset.New(), "0x"))); n != 0 {
		t.Fatalf("\"0x\" should not match anything, got %d rows", n)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	tbl := charset.New()
	for _, q := range []string{"", "a", "1", "0x41", "0b1", "del", "!!!"} {
		first := Evaluate(tbl, q)
		second := Evaluate(tbl, q)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("Evaluate(%q) not idempotent", q)
		}
	}
	if tbl.At(65).Char != "A" {
		t.Fatalf("Evaluate must not mutate the table")
	}
}

func TestViewModelIndexesByCodePoint(t *testing.T) {
	views := ViewModel(Evaluate(charset.New(), "0x41"))
	if len(views) != charset.Size {
		t.Fatalf("expected %d views, got %d", charset.Size, len(views))
	}
	if v := views[65]; !v.Visible || !v.Highlighted || v.Rank != 0 {
		t.Fatalf("unexpected view for 65: %+v", v)
	}
	// hidden rows keep code point order after the single match
	if v := views[0]; v.Visible || v.Rank != 1 {
		t.Fatalf("unexpected view for 0: %+v", v)
	}
	if v := views[66]; v.Visible || v.Rank != 66 {
		t.Fatalf("unexpected view for 66: %+v", v)
	}
}
