package adapters

import (
	"context"
	"time"

	"github.com/VoxDroid/asciiref/internal/exporter"
	"github.com/VoxDroid/asciiref/internal/query"
)

// ExportAdapterImpl exports into dir using the default dated file name.
type ExportAdapterImpl struct {
	format exporter.Format
	dir    string
	now    func() time.Time
}

// NewExportAdapter constructs an adapter writing format f into dir.
func NewExportAdapter(f exporter.Format, dir string) *ExportAdapterImpl {
	return &ExportAdapterImpl{format: f, dir: dir, now: time.Now}
}

// Export implements ExportAdapter.
func (a *ExportAdapterImpl) Export(ctx context.Context, results []query.Result, q string) (string, error) {
	now := a.now()
	dst := exporter.DefaultPath(a.dir, a.format, now)
	opts := exporter.Options{Query: q, Format: a.format, Now: func() time.Time { return now }}
	if err := exporter.Export(ctx, results, dst, opts); err != nil {
		return "", err
	}
	return dst, nil
}
