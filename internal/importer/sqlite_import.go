package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"

	dbpkg "github.com/VoxDroid/asciiref/internal/db"
	"github.com/VoxDroid/asciiref/internal/exporter"
)

// loadSQLite reads an exported database without modifying it.
func loadSQLite(ctx context.Context, srcPath string) (exporter.Document, error) {
	src, err := sql.Open("sqlite", "file:"+srcPath+"?mode=ro")
	if err != nil {
		return exporter.Document{}, fmt.Errorf("open src: %w", err)
	}
	defer func() { _ = src.Close() }()

	var version int
	if err := src.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return exporter.Document{}, fmt.Errorf("read schema version: %w", err)
	}
	if version != dbpkg.SchemaVersion {
		return exporter.Document{}, fmt.Errorf("%w: schema version %d, want %d", ErrCorrupt, version, dbpkg.SchemaVersion)
	}

	var doc exporter.Document
	err = src.QueryRowContext(ctx, "SELECT query, mode, exported_at FROM export_meta WHERE id = 1").Scan(&doc.Query, &doc.Mode, &doc.ExportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return exporter.Document{}, fmt.Errorf("%w: missing export_meta", ErrCorrupt)
	}
	if err != nil {
		return exporter.Document{}, fmt.Errorf("read export_meta: %w", err)
	}

	rows, err := src.QueryContext(ctx, "SELECT code_point, char, dec, hex, oct, bin, is_control, score, rank FROM characters ORDER BY rank ASC")
	if err != nil {
		return exporter.Document{}, fmt.Errorf("read characters: %w", err)
	}
	defer func() { _ = rows.Close() }()
	doc.Rows = []exporter.Row{}
	for rows.Next() {
		var r exporter.Row
		if err := rows.Scan(&r.CodePoint, &r.Char, &r.Decimal, &r.Hex, &r.Octal, &r.Binary, &r.Control, &r.Score, &r.Rank); err != nil {
			return exporter.Document{}, fmt.Errorf("scan character: %w", err)
		}
		doc.Rows = append(doc.Rows, r)
	}
	return doc, rows.Err()
}
