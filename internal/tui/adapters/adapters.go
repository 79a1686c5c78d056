// Package adapters provides adapter interfaces used by the TUI to decouple it
// from the exporter and the filesystem.
package adapters

import (
	"context"

	"github.com/VoxDroid/asciiref/internal/query"
)

// ExportAdapter writes the current view somewhere and reports where.
type ExportAdapter interface {
	Export(ctx context.Context, results []query.Result, q string) (string, error)
}
