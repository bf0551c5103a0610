// Package notebook reads the directory of outline pages that tasks are
// extracted from. A page is a markdown or plain text file; the document
// id is its path relative to the notebook root.
package notebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/guildner/tasklist/pkg/parser"
	"github.com/guildner/tasklist/pkg/parsetree"
)

// Page is one document in the notebook.
type Page struct {
	Path string // relative path, the document id
	Name string // display name, extension stripped
}

// Notebook is a directory tree of pages.
type Notebook struct {
	Root string

	// Include restricts indexing to pages whose name starts with one
	// of these prefixes; empty means everything. Exclude prunes within
	// the included set.
	Include []string
	Exclude []string
}

// Open validates the notebook root.
func Open(root string) (*Notebook, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("notebook: open %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("notebook: %s is not a directory", root)
	}
	return &Notebook{Root: root}, nil
}

func pageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".txt", ".markdown":
		return true
	}
	return false
}

// DisplayName strips the extension and normalizes separators.
func DisplayName(relPath string) string {
	name := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	return filepath.ToSlash(name)
}

// Pages lists all indexable pages under the root, ordered by path.
// Include/exclude subtree filters apply here.
func (n *Notebook) Pages() ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(n.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != n.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if !pageFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(n.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !n.Indexed(DisplayName(rel)) {
			return nil
		}
		pages = append(pages, Page{Path: rel, Name: DisplayName(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("notebook: walk %s: %w", n.Root, err)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	return pages, nil
}

// Indexed applies the include/exclude subtree preferences to a display
// name.
func (n *Notebook) Indexed(name string) bool {
	if len(n.Include) > 0 {
		included := false
		for _, prefix := range n.Include {
			if strings.HasPrefix(name, prefix) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}
	for _, prefix := range n.Exclude {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return false
		}
	}
	return true
}

// ParseTree reads and parses a page. Missing pages yield a nil tree, not
// an error; stale references are a filtering concern for callers.
func (n *Notebook) ParseTree(relPath string) (*parsetree.Node, error) {
	source, err := os.ReadFile(filepath.Join(n.Root, filepath.FromSlash(relPath)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("notebook: read %s: %w", relPath, err)
	}
	return parser.Parse(source), nil
}

// Fingerprint identifies a page version cheaply, for skipping unchanged
// pages on rebuild. Empty when the page is missing.
func (n *Notebook) Fingerprint(relPath string) (string, error) {
	info, err := os.Stat(filepath.Join(n.Root, filepath.FromSlash(relPath)))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("notebook: stat %s: %w", relPath, err)
	}
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}
