package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guildner/tasklist/pkg/extract"
	"github.com/guildner/tasklist/pkg/notebook"
	"github.com/guildner/tasklist/pkg/store"
	"github.com/guildner/tasklist/pkg/task"
)

func testIndexer(t *testing.T) (*Indexer, string) {
	t.Helper()
	root := t.TempDir()

	n, err := notebook.Open(root)
	if err != nil {
		t.Fatalf("notebook.Open() failed: %v", err)
	}
	s, err := store.Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ix := &Indexer{
		Notebook: n,
		Store:    s,
		Extractor: &extract.Extractor{
			Labels:        task.NewLabels(task.DefaultLabels, task.DefaultNextLabel),
			AllCheckboxes: true,
		},
	}
	return ix, root
}

func writePage(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestRebuild(t *testing.T) {
	ix, root := testIndexer(t)
	ctx := context.Background()

	writePage(t, root, "Inbox.md", "- [ ] buy milk\n- [ ] pay rent\n")
	writePage(t, root, "Home/Garden.md", "- [ ] water plants\n")
	writePage(t, root, "Empty.md", "nothing to do here\n")

	indexed, err := ix.Rebuild(ctx, false)
	if err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}
	if indexed != 3 {
		t.Errorf("indexed = %d, want 3", indexed)
	}

	all, err := ix.Store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d rows, want 3", len(all))
	}

	docs, err := ix.Store.Documents(ctx)
	if err != nil {
		t.Fatalf("Documents() failed: %v", err)
	}
	for _, doc := range docs {
		if doc.Path == "Empty.md" {
			t.Error("page without tasks stored a document")
		}
	}
}

func TestRebuildRemovesVanishedPages(t *testing.T) {
	ix, root := testIndexer(t)
	ctx := context.Background()

	writePage(t, root, "Inbox.md", "- [ ] buy milk\n")
	if _, err := ix.Rebuild(ctx, false); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}

	if err := os.Remove(filepath.Join(root, "Inbox.md")); err != nil {
		t.Fatalf("remove page: %v", err)
	}
	if _, err := ix.Rebuild(ctx, false); err != nil {
		t.Fatalf("second Rebuild() failed: %v", err)
	}

	all, err := ix.Store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("rows = %+v, want none after the page vanished", all)
	}
}

func TestRebuildSkipsUnchanged(t *testing.T) {
	ix, root := testIndexer(t)
	ix.WithCache(filepath.Join(t.TempDir(), "cache"))
	ctx := context.Background()

	writePage(t, root, "Inbox.md", "- [ ] buy milk\n")
	if _, err := ix.Rebuild(ctx, false); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}

	indexed, err := ix.Rebuild(ctx, false)
	if err != nil {
		t.Fatalf("second Rebuild() failed: %v", err)
	}
	if indexed != 0 {
		t.Errorf("indexed = %d, want 0 for an unchanged notebook", indexed)
	}

	indexed, err = ix.Rebuild(ctx, true)
	if err != nil {
		t.Fatalf("forced Rebuild() failed: %v", err)
	}
	if indexed != 1 {
		t.Errorf("indexed = %d, want 1 when forced", indexed)
	}

	// A touched page is picked up again.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(filepath.Join(root, "Inbox.md"), future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	indexed, err = ix.Rebuild(ctx, false)
	if err != nil {
		t.Fatalf("Rebuild() after touch failed: %v", err)
	}
	if indexed != 1 {
		t.Errorf("indexed = %d, want 1 after touch", indexed)
	}
}

func TestIndexPageDeadlineByPage(t *testing.T) {
	ix, root := testIndexer(t)
	ix.DeadlineByPage = true
	ctx := context.Background()

	writePage(t, root, "Journal/2024-03-01.md", "- [ ] dentist\n")
	if err := ix.IndexPage(ctx, "Journal/2024-03-01.md"); err != nil {
		t.Fatalf("IndexPage() failed: %v", err)
	}

	all, err := ix.Store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() failed: %v", err)
	}
	if len(all) != 1 || all[0].Due != "2024-03-01" {
		t.Fatalf("rows = %+v, want the page date as due", all)
	}
}

func TestIndexPageExcluded(t *testing.T) {
	ix, root := testIndexer(t)
	ctx := context.Background()

	writePage(t, root, "Archive/Old.md", "- [ ] forgotten\n")
	if err := ix.IndexPage(ctx, "Archive/Old.md"); err != nil {
		t.Fatalf("IndexPage() failed: %v", err)
	}

	ix.Notebook.Exclude = []string{"Archive"}
	if err := ix.IndexPage(ctx, "Archive/Old.md"); err != nil {
		t.Fatalf("IndexPage() on excluded page failed: %v", err)
	}

	all, err := ix.Store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("rows = %+v, want none for an excluded page", all)
	}
}

func TestRemovePage(t *testing.T) {
	ix, root := testIndexer(t)
	ctx := context.Background()

	writePage(t, root, "Inbox.md", "- [ ] buy milk\n")
	if err := ix.IndexPage(ctx, "Inbox.md"); err != nil {
		t.Fatalf("IndexPage() failed: %v", err)
	}

	had, err := ix.RemovePage(ctx, "Inbox.md")
	if err != nil {
		t.Fatalf("RemovePage() failed: %v", err)
	}
	if !had {
		t.Error("RemovePage() = false, want true")
	}
}
