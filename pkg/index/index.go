// Package index drives extraction: it walks the notebook, runs the
// extractor per page, and replaces the stored rows. Each page is one
// independent replace, so a rebuild is restartable at any point.
package index

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/guildner/tasklist/pkg/extract"
	"github.com/guildner/tasklist/pkg/notebook"
	"github.com/guildner/tasklist/pkg/store"
)

// Indexer wires the notebook, the extractor and the task store.
type Indexer struct {
	Notebook  *notebook.Notebook
	Extractor *extract.Extractor
	Store     *store.Store

	// DeadlineByPage gives tasks on calendar pages an implicit due
	// date derived from the page name.
	DeadlineByPage bool

	// cache remembers page fingerprints so Rebuild can skip unchanged
	// pages. Nil disables skipping.
	cache *diskv.Diskv
}

// WithCache attaches a fingerprint cache rooted at dir.
func (ix *Indexer) WithCache(dir string) *Indexer {
	ix.cache = diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
	return ix
}

// cacheKey flattens a page path into a safe diskv key.
func cacheKey(relPath string) string {
	return base64.URLEncoding.EncodeToString([]byte(relPath))
}

// IndexPage (re)extracts one page and replaces its stored rows. A page
// that vanished or yields no tasks ends up with no rows at all.
func (ix *Indexer) IndexPage(ctx context.Context, relPath string) error {
	name := notebook.DisplayName(relPath)
	if !ix.Notebook.Indexed(name) {
		_, err := ix.Store.RemoveDocument(ctx, relPath)
		return err
	}

	tree, err := ix.Notebook.ParseTree(relPath)
	if err != nil {
		return err
	}
	if tree == nil {
		_, err := ix.Store.RemoveDocument(ctx, relPath)
		return err
	}

	defaultDate := ""
	if ix.DeadlineByPage {
		defaultDate = notebook.DefaultDate(name)
	}

	forest := ix.Extractor.Extract(tree, defaultDate)
	if len(forest) == 0 {
		if _, err := ix.Store.RemoveDocument(ctx, relPath); err != nil {
			return err
		}
	} else if err := ix.Store.Replace(ctx, relPath, name, forest); err != nil {
		return err
	}

	ix.remember(relPath)
	return nil
}

// RemovePage drops all rows for a page. Returns true iff any existed.
func (ix *Indexer) RemovePage(ctx context.Context, relPath string) (bool, error) {
	if ix.cache != nil {
		_ = ix.cache.Erase(cacheKey(relPath))
	}
	return ix.Store.RemoveDocument(ctx, relPath)
}

// Rebuild indexes every page of the notebook and removes rows for pages
// that no longer exist. Unchanged pages are skipped unless force is set.
// Returns the number of pages (re)indexed.
func (ix *Indexer) Rebuild(ctx context.Context, force bool) (int, error) {
	pages, err := ix.Notebook.Pages()
	if err != nil {
		return 0, err
	}

	// A cache hit only counts when the store actually has rows for the
	// page; a fresh database with a stale cache must still reindex.
	stored := make(map[string]bool)
	if docs, err := ix.Store.Documents(ctx); err == nil {
		for _, doc := range docs {
			stored[doc.Path] = true
		}
	}

	present := make(map[string]bool, len(pages))
	indexed := 0
	for _, page := range pages {
		present[page.Path] = true
		if !force && stored[page.Path] && ix.unchanged(page.Path) {
			continue
		}
		if err := ix.IndexPage(ctx, page.Path); err != nil {
			return indexed, fmt.Errorf("index %s: %w", page.Path, err)
		}
		indexed++
	}

	docs, err := ix.Store.Documents(ctx)
	if err != nil {
		return indexed, err
	}
	for _, doc := range docs {
		if !present[doc.Path] {
			if _, err := ix.RemovePage(ctx, doc.Path); err != nil {
				return indexed, err
			}
		}
	}

	return indexed, nil
}

func (ix *Indexer) unchanged(relPath string) bool {
	if ix.cache == nil {
		return false
	}
	want, err := ix.Notebook.Fingerprint(relPath)
	if err != nil || want == "" {
		return false
	}
	have, err := ix.cache.Read(cacheKey(relPath))
	return err == nil && string(have) == want
}

func (ix *Indexer) remember(relPath string) {
	if ix.cache == nil {
		return
	}
	fp, err := ix.Notebook.Fingerprint(relPath)
	if err != nil || fp == "" {
		return
	}
	if err := ix.cache.Write(cacheKey(relPath), []byte(fp)); err != nil {
		fmt.Fprintf(os.Stderr, "index: cache %s: %v\n", relPath, err)
	}
}
