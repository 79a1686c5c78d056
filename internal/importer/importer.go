// Package importer reads exported reference tables back in, whatever format
// they were written in.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/exporter"
	"github.com/VoxDroid/asciiref/internal/query"
)

// ErrCorrupt is returned when a file decodes but its rows do not describe the
// reference table.
var ErrCorrupt = errors.New("corrupt export")

// FormatFromPath guesses the export format from the file extension.
func FormatFromPath(path string) (exporter.Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", exporter.ErrUnknownFormat, path)
	}
	return exporter.ParseFormat(ext)
}

// Load reads the export at path. The format is taken from the extension.
func Load(ctx context.Context, path string) (exporter.Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return exporter.Document{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return exporter.Document{}, fmt.Errorf("open export: %w", err)
	}

	var doc exporter.Document
	if f == exporter.FormatSQLite {
		doc, err = loadSQLite(ctx, path)
	} else {
		doc, err = loadFile(path, f)
	}
	if err != nil {
		return exporter.Document{}, err
	}
	if err := verify(doc); err != nil {
		return exporter.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func loadFile(path string, f exporter.Format) (exporter.Document, error) {
	in, err := os.Open(path)
	if err != nil {
		return exporter.Document{}, fmt.Errorf("open export: %w", err)
	}
	defer func() { _ = in.Close() }()
	doc, err := exporter.Decode(in, f)
	if err != nil {
		return exporter.Document{}, fmt.Errorf("decode %s: %w", f, err)
	}
	return doc, nil
}

// verify checks every row against the built-in table and that ranks are
// strictly increasing.
func verify(doc exporter.Document) error {
	t := charset.New()
	prev := -1
	for _, r := range doc.Rows {
		if r.CodePoint < 0 || r.CodePoint >= charset.Size {
			return fmt.Errorf("%w: code point %d out of range", ErrCorrupt, r.CodePoint)
		}
		want := t.At(r.CodePoint)
		if r.Char != want.Char || r.Decimal != want.Decimal || r.Hex != want.Hex || r.Octal != want.Octal || r.Binary != want.Binary {
			return fmt.Errorf("%w: row for code point %d does not match the ASCII table", ErrCorrupt, r.CodePoint)
		}
		if r.Rank <= prev {
			return fmt.Errorf("%w: rank %d out of order", ErrCorrupt, r.Rank)
		}
		prev = r.Rank
	}
	return nil
}

// Results turns the rows of doc back into visible query results, in file
// order, so they can be rendered like a live query.
func Results(doc exporter.Document) []query.Result {
	t := charset.New()
	highlight := doc.Query != ""
	out := make([]query.Result, len(doc.Rows))
	for i, r := range doc.Rows {
		out[i] = query.Result{
			Record:      t.At(r.CodePoint),
			Score:       r.Score,
			Visible:     true,
			Highlighted: highlight && r.Score > 0,
			Rank:        r.Rank,
		}
	}
	return out
}
