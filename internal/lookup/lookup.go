// Package lookup resolves a single user token (glyph, mnemonic or number) to
// a reference table record and suggests mnemonics when it cannot.
package lookup

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/VoxDroid/asciiref/internal/charset"
)

// ErrNotFound is returned when a token does not name any code point.
var ErrNotFound = errors.New("no such character")

// Resolver indexes the control mnemonics of a table.
type Resolver struct {
	table *charset.Table
	trie  *patricia.Trie
	names []string
}

// NewResolver builds a resolver over t.
func NewResolver(t *charset.Table) *Resolver {
	r := &Resolver{table: t, trie: patricia.NewTrie()}
	for _, rec := range t.Records() {
		if !rec.IsControl() {
			continue
		}
		r.trie.Insert(patricia.Prefix(strings.ToLower(rec.Char)), rec.CodePoint)
		r.names = append(r.names, rec.Char)
	}
	return r
}

// Resolve finds the record named by token. A single non-digit character is
// taken literally, then mnemonics are matched case-insensitively, then the
// token is parsed as a 0x/0o/0b prefixed or decimal number.
func (r *Resolver) Resolve(token string) (charset.Record, error) {
	if utf8.RuneCountInString(token) == 1 {
		ch, _ := utf8.DecodeRuneInString(token)
		if ch < charset.Size && (ch < '0' || ch > '9') {
			return r.table.At(int(ch)), nil
		}
	}
	if item := r.trie.Get(patricia.Prefix(strings.ToLower(token))); item != nil {
		return r.table.At(item.(int)), nil
	}
	if cp, ok := parseNumber(token); ok {
		return r.table.At(cp), nil
	}
	return charset.Record{}, fmt.Errorf("%w: %q", ErrNotFound, token)
}

func parseNumber(token string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(token))
	var v int64
	var err error
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0b"):
		v, err = strconv.ParseInt(s, 0, 16)
	default:
		v, err = strconv.ParseInt(s, 10, 16)
	}
	if err != nil || v < 0 || v >= charset.Size {
		return 0, false
	}
	return int(v), true
}

// Complete lists the mnemonics starting with prefix, in code point order.
func (r *Resolver) Complete(prefix string) []charset.Record {
	if prefix == "" {
		return nil
	}
	var cps []int
	_ = r.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		cps = append(cps, item.(int))
		return nil
	})
	sort.Ints(cps)
	out := make([]charset.Record, len(cps))
	for i, cp := range cps {
		out[i] = r.table.At(cp)
	}
	return out
}

// Suggest returns up to limit mnemonics fuzzy-matching token, best first.
func (r *Resolver) Suggest(token string, limit int) []charset.Record {
	if token == "" || limit <= 0 {
		return nil
	}
	matches := fuzzy.FindFrom(strings.ToUpper(token), nameSource(r.names))
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]charset.Record, 0, len(matches))
	for _, m := range matches {
		item := r.trie.Get(patricia.Prefix(strings.ToLower(m.Str)))
		out = append(out, r.table.At(item.(int)))
	}
	return out
}

// nameSource implements fuzzy.Source over the mnemonic list.
type nameSource []string

func (s nameSource) String(i int) string { return s[i] }
func (s nameSource) Len() int            { return len(s) }
