package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/exporter"
	"github.com/VoxDroid/asciiref/internal/query"
)

func TestExportAdapterWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	a := NewExportAdapter(exporter.FormatTOML, dir)
	a.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	res := query.Evaluate(charset.New(), "0x4")
	p, err := a.Export(context.Background(), res, "0x4")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if p != filepath.Join(dir, "asciiref-2024-01-02.toml") {
		t.Fatalf("unexpected path %s", p)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}

	// a second export on the same day must not clobber the first
	p2, err := a.Export(context.Background(), res, "0x4")
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	if p2 == p {
		t.Fatalf("expected a distinct path for the second export")
	}
}
