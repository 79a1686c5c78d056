package ui

import (
	"context"

	"github.com/VoxDroid/asciiref/internal/query"
)

// Model defines the small subset of methods from the framework-agnostic
// internal UI model that the TUI depends on. This decouples presentation
// code from the concrete implementation and makes unit testing easier.
type Model interface {
	SetQuery(q string) bool
	Query() string
	Mode() query.Mode
	Results() []query.Result
	VisibleCount() int
	Total() int
	ExportView() func(context.Context) (string, error)
}
