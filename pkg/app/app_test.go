package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/guildner/tasklist/pkg/config"
	"github.com/guildner/tasklist/pkg/query"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	state := t.TempDir()
	return &config.Config{
		Notebook:      root,
		DB:            filepath.Join(state, "index.db"),
		Cache:         filepath.Join(state, "cache"),
		Labels:        "FIXME, TODO",
		NextLabel:     "Next:",
		AllCheckboxes: true,
	}
}

func TestServiceEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	page := "TODO: @home\n- [ ] buy milk\n- [ ] pay rent @errands\n"
	if err := os.WriteFile(filepath.Join(cfg.Notebook, "Inbox.md"), []byte(page), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}

	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer svc.Close()

	ctx := context.Background()
	if _, err := svc.Indexer.Rebuild(ctx, false); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}

	rows, err := svc.Store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	docs, err := svc.Store.Documents(ctx)
	if err != nil {
		t.Fatalf("Documents() failed: %v", err)
	}
	names := make(map[int64]string, len(docs))
	for id, d := range docs {
		names[id] = d.Name
	}

	visible := svc.Engine.Visible(rows, names, query.Criteria{Tags: []string{"errands"}})
	view := query.BuildView(rows, names, visible)
	if len(view) != 1 || view[0].Description != "pay rent @errands @home" {
		t.Fatalf("view = %+v, want the errands row with the header tag", view)
	}
}

func TestServiceExcludedSubtrees(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExcludedSubtrees = "Archive"

	archive := filepath.Join(cfg.Notebook, "Archive")
	if err := os.MkdirAll(archive, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(archive, "Old.md"), []byte("- [ ] forgotten\n"), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}

	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer svc.Close()

	ctx := context.Background()
	if _, err := svc.Indexer.Rebuild(ctx, false); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}
	rows, err := svc.Store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %+v, want none from the excluded subtree", rows)
	}
}
