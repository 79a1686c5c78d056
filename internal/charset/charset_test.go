package charset

import (
	"strconv"
	"testing"
)

func TestNewCoversEveryCodePoint(t *testing.T) {
	tbl := New()
	if tbl.Len() != Size {
		t.Fatalf("Len() = %d, want %d", tbl.Len(), Size)
	}
	for cp := 0; cp < Size; cp++ {
		r := tbl.At(cp)
		if r.CodePoint != cp {
			t.Fatalf("At(%d).CodePoint = %d", cp, r.CodePoint)
		}
		if r.Decimal != strconv.Itoa(cp) {
			t.Fatalf("cp %d: decimal %q", cp, r.Decimal)
		}
		if want := strconv.FormatInt(int64(cp), 16); r.Hex != want {
			t.Fatalf("cp %d: hex %q want %q", cp, r.Hex, want)
		}
		if want := strconv.FormatInt(int64(cp), 8); r.Octal != want {
			t.Fatalf("cp %d: octal %q want %q", cp, r.Octal, want)
		}
		if want := strconv.FormatInt(int64(cp), 2); r.Binary != want {
			t.Fatalf("cp %d: binary %q want %q", cp, r.Binary, want)
		}
	}
}

func TestEncodingsHaveNoPrefixOrPadding(t *testing.T) {
	tbl := New()
	zero := tbl.At(0)
	for _, f := range []Field{FieldDecimal, FieldHex, FieldOctal, FieldBinary} {
		if zero.Text(f) != "0" {
			t.Fatalf("cp 0 %s = %q, want \"0\"", f, zero.Text(f))
		}
	}
	r := tbl.At(127)
	if r.Hex != "7f" || r.Octal != "177" || r.Binary != "1111111" {
		t.Fatalf("unexpected encodings for 127: %+v", r)
	}
	if tbl.At(10).Hex != "a" {
		t.Fatalf("hex for 10 should be lower-case \"a\", got %q", tbl.At(10).Hex)
	}
}

func TestNames(t *testing.T) {
	tbl := New()
	cases := map[int]string{
		0:   "NUL",
		10:  "LF",
		27:  "ESC",
		31:  "US",
		32:  " ",
		48:  "0",
		65:  "A",
		97:  "a",
		126: "~",
		127: "DEL",
	}
	for cp, want := range cases {
		if got := tbl.At(cp).Char; got != want {
			t.Fatalf("At(%d).Char = %q, want %q", cp, got, want)
		}
	}
	if Name(-1) != "" || Name(128) != "" {
		t.Fatalf("out of range names should be empty")
	}
}

func TestIsControl(t *testing.T) {
	for cp := 0; cp < Size; cp++ {
		want := cp < 32 || cp == 127
		if IsControl(cp) != want {
			t.Fatalf("IsControl(%d) = %v", cp, !want)
		}
	}
	if len(Mnemonics()) != 33 {
		t.Fatalf("expected 33 mnemonics, got %d", len(Mnemonics()))
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	tbl := New()
	rs := tbl.Records()
	rs[65].Char = "changed"
	if tbl.At(65).Char != "A" {
		t.Fatalf("Records must not expose the table's storage")
	}
}

func TestDescribeAndKind(t *testing.T) {
	cases := []struct {
		cp   int
		desc string
		kind string
	}{
		{0, "Null", "Control"},
		{27, "Escape", "Control"},
		{127, "Delete", "Control"},
		{32, "Space", "Space"},
		{48, "Digit", "Digit"},
		{65, "Uppercase letter", "Uppercase letter"},
		{122, "Lowercase letter", "Lowercase letter"},
		{64, "Punctuation", "Punctuation"},
	}
	for _, c := range cases {
		if got := Describe(c.cp); got != c.desc {
			t.Fatalf("Describe(%d) = %q, want %q", c.cp, got, c.desc)
		}
		if got := Kind(c.cp); got != c.kind {
			t.Fatalf("Kind(%d) = %q, want %q", c.cp, got, c.kind)
		}
	}
}
