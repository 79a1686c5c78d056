// Package charset builds the immutable 128-entry ASCII reference table.
package charset

import "strconv"

// Size is the number of code points in the table.
const Size = 128

// Del is the code point of the delete control character.
const Del = 127

var controlNames = [32]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL", "BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB", "CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// Field identifies one textual representation of a code point.
type Field int

const (
	FieldChar Field = iota
	FieldDecimal
	FieldHex
	FieldOctal
	FieldBinary
)

// String returns the column name used by printers and exporters.
func (f Field) String() string {
	switch f {
	case FieldChar:
		return "char"
	case FieldDecimal:
		return "dec"
	case FieldHex:
		return "hex"
	case FieldOctal:
		return "oct"
	case FieldBinary:
		return "bin"
	}
	return "unknown"
}

// Record is one row of the reference table.
type Record struct {
	CodePoint int
	Char      string
	Decimal   string
	Hex       string
	Octal     string
	Binary    string
}

// Text returns the representation of r for field f.
func (r Record) Text(f Field) string {
	switch f {
	case FieldChar:
		return r.Char
	case FieldDecimal:
		return r.Decimal
	case FieldHex:
		return r.Hex
	case FieldOctal:
		return r.Octal
	case FieldBinary:
		return r.Binary
	}
	return ""
}

// IsControl reports whether r is displayed by mnemonic rather than glyph.
func (r Record) IsControl() bool { return IsControl(r.CodePoint) }

// Table is the ordered, read-only set of records for code points 0..127.
// The zero value is not usable; construct it with New.
type Table struct {
	records [Size]Record
}

// New builds the table. It has no inputs and cannot fail.
func New() *Table {
	t := &Table{}
	for cp := 0; cp < Size; cp++ {
		t.records[cp] = newRecord(cp)
	}
	return t
}

func newRecord(cp int) Record {
	v := int64(cp)
	return Record{
		CodePoint: cp,
		Char:      Name(cp),
		Decimal:   strconv.FormatInt(v, 10),
		Hex:       strconv.FormatInt(v, 16),
		Octal:     strconv.FormatInt(v, 8),
		Binary:    strconv.FormatInt(v, 2),
	}
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// At returns the record for code point cp. It panics if cp is out of range.
func (t *Table) At(cp int) Record { return t.records[cp] }

// Records returns a copy of all records in code point order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records[:])
	return out
}

// IsControl reports whether cp is a control code (0..31 or 127).
func IsControl(cp int) bool {
	return (cp >= 0 && cp < len(controlNames)) || cp == Del
}

// Name returns the display string for cp: the mnemonic for control codes and
// the literal character otherwise. Out-of-range code points yield "".
func Name(cp int) string {
	switch {
	case cp >= 0 && cp < len(controlNames):
		return controlNames[cp]
	case cp == Del:
		return "DEL"
	case cp > 0 && cp < Size:
		return string(rune(cp))
	}
	return ""
}

// Mnemonics returns the control mnemonics keyed by code point.
func Mnemonics() map[int]string {
	out := make(map[int]string, len(controlNames)+1)
	for cp, n := range controlNames {
		out[cp] = n
	}
	out[Del] = "DEL"
	return out
}
