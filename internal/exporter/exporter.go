// Package exporter writes ranked reference table views to portable files.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/VoxDroid/asciiref/internal/query"
)

// Format names an export encoding.
type Format string

const (
	FormatSQLite  Format = "sqlite"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists the supported formats in the order shown to users.
var Formats = []Format{FormatSQLite, FormatYAML, FormatTOML, FormatMsgpack}

var (
	// ErrUnknownFormat is returned for a format name that is not supported.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrExists is returned when the destination exists and overwriting was not requested.
	ErrExists = errors.New("destination exists")
)

// ParseFormat converts a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	n := Format(strings.ToLower(strings.TrimSpace(name)))
	switch n {
	case "db", "sqlite3":
		return FormatSQLite, nil
	case "yml":
		return FormatYAML, nil
	case "mpk":
		return FormatMsgpack, nil
	}
	for _, f := range Formats {
		if f == n {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Ext returns the file extension used for f, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatSQLite:
		return ".db"
	case FormatMsgpack:
		return ".msgpack"
	}
	return "." + string(f)
}

// Row is one exported table row.
type Row struct {
	CodePoint int    `toml:"code_point" yaml:"code_point" msgpack:"code_point"`
	Char      string `toml:"char" yaml:"char" msgpack:"char"`
	Decimal   string `toml:"dec" yaml:"dec" msgpack:"dec"`
	Hex       string `toml:"hex" yaml:"hex" msgpack:"hex"`
	Octal     string `toml:"oct" yaml:"oct" msgpack:"oct"`
	Binary    string `toml:"bin" yaml:"bin" msgpack:"bin"`
	Control   bool   `toml:"control" yaml:"control" msgpack:"control"`
	Score     int    `toml:"score" yaml:"score" msgpack:"score"`
	Rank      int    `toml:"rank" yaml:"rank" msgpack:"rank"`
}

// Document is the payload of the file based formats.
type Document struct {
	Query      string `toml:"query" yaml:"query" msgpack:"query"`
	Mode       string `toml:"mode" yaml:"mode" msgpack:"mode"`
	ExportedAt string `toml:"exported_at" yaml:"exported_at" msgpack:"exported_at"`
	Rows       []Row  `toml:"rows" yaml:"rows" msgpack:"rows"`
}

// Options control an export.
type Options struct {
	Query  string
	Format Format
	// Force replaces an existing destination.
	Force bool
	// Now stamps the export; time.Now is used when nil.
	Now func() time.Time
}

// NewDocument keeps the visible results, in display order.
func NewDocument(results []query.Result, q string, now time.Time) Document {
	doc := Document{
		Query:      q,
		Mode:       query.Parse(q).Mode.String(),
		ExportedAt: now.UTC().Format(time.RFC3339),
		Rows:       []Row{},
	}
	for _, r := range query.Visible(results) {
		rec := r.Record
		doc.Rows = append(doc.Rows, Row{
			CodePoint: rec.CodePoint,
			Char:      rec.Char,
			Decimal:   rec.Decimal,
			Hex:       rec.Hex,
			Octal:     rec.Octal,
			Binary:    rec.Binary,
			Control:   rec.IsControl(),
			Score:     r.Score,
			Rank:      r.Rank,
		})
	}
	return doc
}

// Export writes the visible rows of results to dst.
func Export(ctx context.Context, results []query.Result, dst string, opts Options) error {
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return err
	}
	if _, err := os.Stat(dst); err == nil {
		if !opts.Force {
			return fmt.Errorf("%w: %s", ErrExists, dst)
		}
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("remove existing destination: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	doc := NewDocument(results, opts.Query, now())

	if opts.Format == FormatSQLite {
		return exportSQLite(ctx, doc, dst)
	}
	return writeFile(doc, dst, opts.Format)
}

// DefaultPath returns a non-existing path in dir named after the export date,
// e.g. asciiref-2024-05-01.db, appending -N when needed.
func DefaultPath(dir string, f Format, now time.Time) string {
	date := now.UTC().Format("2006-01-02")
	dst := filepath.Join(dir, fmt.Sprintf("asciiref-%s%s", date, f.Ext()))
	for si := 1; ; si++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			return dst
		}
		dst = filepath.Join(dir, fmt.Sprintf("asciiref-%s-%d%s", date, si, f.Ext()))
	}
}
