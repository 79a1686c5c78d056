// Package query scores, filters and ranks reference table rows against a
// free-text query. Evaluate is a pure function of the table and the query.
package query

import (
	"strings"

	"github.com/VoxDroid/asciiref/internal/charset"
)

// MaxPrefixed is the score of an exact match in a prefixed (single field) search.
const MaxPrefixed = 10000

// Mode selects how a query is compared against records.
type Mode int

const (
	// ModeWeighted sums weighted matches across every field.
	ModeWeighted Mode = iota
	ModeHex
	ModeOctal
	ModeBinary
)

func (m Mode) String() string {
	switch m {
	case ModeHex:
		return "hex"
	case ModeOctal:
		return "octal"
	case ModeBinary:
		return "binary"
	}
	return "weighted"
}

// field returns the single field searched by a prefixed mode.
func (m Mode) field() charset.Field {
	switch m {
	case ModeHex:
		return charset.FieldHex
	case ModeOctal:
		return charset.FieldOctal
	}
	return charset.FieldBinary
}

var prefixes = []struct {
	prefix string
	mode   Mode
}{
	{"0x", ModeHex},
	{"0o", ModeOctal},
	{"0b", ModeBinary},
}

// Query is a normalized query.
type Query struct {
	Raw  string
	Mode Mode
	Term string
}

// Parse lower-cases raw and detects an optional 0x/0o/0b mode prefix. A
// prefix only counts when at least one character follows it.
func Parse(raw string) Query {
	norm := strings.ToLower(raw)
	for _, p := range prefixes {
		if len(norm) > len(p.prefix) && strings.HasPrefix(norm, p.prefix) {
			return Query{Raw: raw, Mode: p.mode, Term: norm[len(p.prefix):]}
		}
	}
	return Query{Raw: raw, Mode: ModeWeighted, Term: norm}
}

// Empty reports whether the raw query is empty.
func (q Query) Empty() bool { return q.Raw == "" }

// Weight is the score awarded for an exact or partial match of one field.
type Weight struct {
	Exact   int
	Partial int
}

// Weights lists the weighted-mode contribution of each field, highest
// priority first.
var Weights = []struct {
	Field  charset.Field
	Weight Weight
}{
	{charset.FieldChar, Weight{Exact: 1000, Partial: 500}},
	{charset.FieldDecimal, Weight{Exact: 100, Partial: 50}},
	{charset.FieldHex, Weight{Exact: 40, Partial: 20}},
	{charset.FieldBinary, Weight{Exact: 15, Partial: 10}},
	{charset.FieldOctal, Weight{Exact: 5, Partial: 2}},
}

// Score returns the relevance of r for q. It must not be called with an
// empty query: an empty term is a substring of every field.
func Score(r charset.Record, q Query) int {
	if q.Mode != ModeWeighted {
		return match(r.Text(q.Mode.field()), q.Term, Weight{Exact: MaxPrefixed, Partial: MaxPrefixed / 2})
	}
	total := 0
	for _, w := range Weights {
		total += match(r.Text(w.Field), q.Term, w.Weight)
	}
	return total
}

func match(text, term string, w Weight) int {
	text = strings.ToLower(text)
	switch {
	case text == term:
		return w.Exact
	case strings.Contains(text, term):
		return w.Partial
	}
	return 0
}
