package exporter

import (
	"context"
	"fmt"

	dbpkg "github.com/VoxDroid/asciiref/internal/db"
)

// exportSQLite creates a standalone SQLite database at dstPath holding doc.
func exportSQLite(ctx context.Context, doc Document, dstPath string) error {
	dstDB, err := dbpkg.Open(dstPath)
	if err != nil {
		return fmt.Errorf("open dst db: %w", err)
	}
	defer func() { _ = dstDB.Close() }()

	tx, err := dstDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "INSERT INTO export_meta (id, query, mode, exported_at) VALUES (1, ?, ?, ?)", doc.Query, doc.Mode, doc.ExportedAt); err != nil {
		return fmt.Errorf("insert export_meta: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO characters (code_point, char, dec, hex, oct, bin, is_control, score, rank) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for _, r := range doc.Rows {
		if _, err := stmt.ExecContext(ctx, r.CodePoint, r.Char, r.Decimal, r.Hex, r.Octal, r.Binary, r.Control, r.Score, r.Rank); err != nil {
			return fmt.Errorf("insert character %d: %w", r.CodePoint, err)
		}
	}
	return tx.Commit()
}
