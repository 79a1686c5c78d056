package model

import (
	"context"
	"errors"
	"testing"

	"github.com/VoxDroid/asciiref/internal/charset"
	"github.com/VoxDroid/asciiref/internal/query"
)

type fakeExporter struct {
	gotQuery string
	gotRows  int
	err      error
}

func (f *fakeExporter) Export(_ context.Context, results []query.Result, q string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.gotQuery = q
	f.gotRows = len(query.Visible(results))
	return "/tmp/out.db", nil
}

func TestNewStartsWithEverythingVisible(t *testing.T) {
	m := New(charset.New(), nil)
	if m.Query() != "" || m.VisibleCount() != charset.Size || m.Total() != charset.Size {
		t.Fatalf("unexpected initial state: query=%q visible=%d", m.Query(), m.VisibleCount())
	}
	if m.Mode() != query.ModeWeighted {
		t.Fatalf("expected weighted mode, got %v", m.Mode())
	}
}

func TestSetQuery(t *testing.T) {
	m := New(charset.New(), nil)
	if !m.SetQuery("0x41") {
		t.Fatalf("expected SetQuery to report a change")
	}
	if m.SetQuery("0x41") {
		t.Fatalf("same query should not re-evaluate")
	}
	if m.VisibleCount() != 1 || m.Results()[0].Record.CodePoint != 65 || m.Mode() != query.ModeHex {
		t.Fatalf("unexpected results for 0x41")
	}
	m.SetQuery("")
	if m.VisibleCount() != charset.Size || m.Results()[0].Record.CodePoint != 0 {
		t.Fatalf("clearing the query should restore the original order")
	}
}

func TestExport(t *testing.T) {
	m := New(charset.New(), nil)
	if _, err := m.Export(context.Background()); err == nil {
		t.Fatalf("expected error without an export adapter")
	}

	fe := &fakeExporter{}
	m = New(charset.New(), fe)
	m.SetQuery("del")
	p, err := m.Export(context.Background())
	if err != nil || p != "/tmp/out.db" {
		t.Fatalf("Export = %q, %v", p, err)
	}
	if fe.gotQuery != "del" || fe.gotRows != 1 {
		t.Fatalf("adapter got query=%q rows=%d", fe.gotQuery, fe.gotRows)
	}

	fe.err = errors.New("disk full")
	if _, err := m.Export(context.Background()); err == nil {
		t.Fatalf("expected adapter error to propagate")
	}
}

func TestExportViewKeepsSnapshot(t *testing.T) {
	fe := &fakeExporter{}
	m := New(charset.New(), fe)
	m.SetQuery("del")
	export := m.ExportView()
	m.SetQuery("0x4")

	if _, err := export(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if fe.gotQuery != "del" || fe.gotRows != 1 {
		t.Fatalf("expected snapshot of \"del\", adapter got query=%q rows=%d", fe.gotQuery, fe.gotRows)
	}
}
