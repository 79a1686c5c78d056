// Package model provides a framework-agnostic UI model built on top of the
// query engine and adapter interfaces so the TUI code can remain
// presentation-focused.
package model

import (
	"context"
	"fmt"
	"slices"

	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/query"
	"github.com/VoxDroid/asciiref/internal/tui/adapters"
)

// UIModel holds the current query and its evaluated results.
type UIModel struct {
	table    *charset.Table
	exporter adapters.ExportAdapter

	query   string
	results []query.Result
}

// New constructs a UIModel over t with an empty query. ex may be nil, in
// which case Export reports that exporting is not configured.
func New(t *charset.Table, ex adapters.ExportAdapter) *UIModel {
	return &UIModel{table: t, exporter: ex, results: query.Evaluate(t, "")}
}

// SetQuery re-evaluates the table when q differs from the current query and
// reports whether it did.
func (m *UIModel) SetQuery(q string) bool {
	if q == m.query && m.results != nil {
		return false
	}
	m.query = q
	m.results = query.Evaluate(m.table, q)
	return true
}

// Query returns the current raw query.
func (m *UIModel) Query() string { return m.query }

// Mode returns the comparison mode of the current query.
func (m *UIModel) Mode() query.Mode { return query.Parse(m.query).Mode }

// Results returns the results for the current query in display order.
func (m *UIModel) Results() []query.Result { return m.results }

// VisibleCount returns how many rows the current query shows.
func (m *UIModel) VisibleCount() int {
	n := 0
	for _, r := range m.results {
		if r.Visible {
			n++
		}
	}
	return n
}

// Total returns the number of rows in the table.
func (m *UIModel) Total() int { return m.table.Len() }

// Export writes the current view through the export adapter and returns the
// destination.
func (m *UIModel) Export(ctx context.Context) (string, error) {
	return m.ExportView()(ctx)
}

// ExportView binds an export to a copy of the current query and results. The
// returned func may run on another goroutine while the query keeps changing.
func (m *UIModel) ExportView() func(context.Context) (string, error) {
	ex := m.exporter
	q := m.query
	results := slices.Clone(m.results)
	return func(ctx context.Context) (string, error) {
		if ex == nil {
			return "", fmt.Errorf("export adapter not configured")
		}
		return ex.Export(ctx, results, q)
	}
}
