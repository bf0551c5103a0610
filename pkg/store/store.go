// Package store persists extracted task forests as flat rows with
// parent/child links, one SQLite database per notebook index.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/guildner/tasklist/pkg/extract"
	"github.com/guildner/tasklist/pkg/task"
)

const schemaSQL = `
create table if not exists documents (
	id INTEGER PRIMARY KEY,
	path TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL
);
create table if not exists tasklist (
	id INTEGER PRIMARY KEY,
	source INTEGER NOT NULL,
	parent INTEGER NOT NULL,
	haschildren BOOLEAN NOT NULL,
	open BOOLEAN NOT NULL,
	actionable BOOLEAN NOT NULL,
	prio INTEGER NOT NULL,
	due TEXT NOT NULL,
	description TEXT NOT NULL
);
create index if not exists tasklist_source on tasklist(source);
create index if not exists tasklist_parent on tasklist(parent);
`

// Document is a source reference for stored tasks.
type Document struct {
	ID   int64
	Path string
	Name string
}

// Event is emitted after any store mutation so presentation layers can
// refresh.
type Event struct {
	Document string
}

// Store is the SQLite backed task store.
type Store struct {
	db *sql.DB

	mu   sync.Mutex
	subs []chan Event
}

// Open opens or creates the task database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure db directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create tables: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Subscribe returns a channel receiving an Event after every mutation.
// Events are dropped when the subscriber is not draining; a later refresh
// picks the change up anyway.
func (s *Store) Subscribe() <-chan Event {
	ch := make(chan Event, 16)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notify(document string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- Event{Document: document}:
		default:
		}
	}
}

// Replace atomically swaps the stored forest for a document. The previous
// rows stay intact unless the whole insert commits.
func (s *Store) Replace(ctx context.Context, path, name string, forest []*extract.TreeTask) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin replace: %w", err)
	}
	defer tx.Rollback()

	docID, err := upsertDocument(ctx, tx, path, name)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `delete from tasklist where source = ?`, docID); err != nil {
		return fmt.Errorf("store: clear rows for %s: %w", path, err)
	}
	if err := insertForest(ctx, tx, docID, 0, forest); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit replace: %w", err)
	}

	s.notify(path)
	return nil
}

func upsertDocument(ctx context.Context, tx *sql.Tx, path, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `select id from documents where path = ?`, path).Scan(&id)
	if err == nil {
		if _, err := tx.ExecContext(ctx, `update documents set name = ? where id = ?`, name, id); err != nil {
			return 0, fmt.Errorf("store: update document %s: %w", path, err)
		}
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("store: lookup document %s: %w", path, err)
	}
	res, err := tx.ExecContext(ctx, `insert into documents(path, name) values (?, ?)`, path, name)
	if err != nil {
		return 0, fmt.Errorf("store: insert document %s: %w", path, err)
	}
	return res.LastInsertId()
}

// insertForest inserts depth first so every row's parent already has an id.
func insertForest(ctx context.Context, tx *sql.Tx, docID, parentID int64, tasks []*extract.TreeTask) error {
	for _, t := range tasks {
		res, err := tx.ExecContext(ctx,
			`insert into tasklist(source, parent, haschildren, open, actionable, prio, due, description)
			 values (?, ?, ?, ?, ?, ?, ?, ?)`,
			docID, parentID, len(t.Children) > 0,
			t.Open, t.Actionable, t.Priority, t.Due, t.Description)
		if err != nil {
			return fmt.Errorf("store: insert task: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("store: insert task: %w", err)
		}
		if len(t.Children) > 0 {
			if err := insertForest(ctx, tx, docID, id, t.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

// RemoveDocument deletes all rows for the document. Returns true iff any
// tasks existed.
func (s *Store) RemoveDocument(ctx context.Context, path string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("store: begin remove: %w", err)
	}
	defer tx.Rollback()

	var docID int64
	err = tx.QueryRowContext(ctx, `select id from documents where path = ?`, path).Scan(&docID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: lookup document %s: %w", path, err)
	}

	res, err := tx.ExecContext(ctx, `delete from tasklist where source = ?`, docID)
	if err != nil {
		return false, fmt.Errorf("store: remove rows for %s: %w", path, err)
	}
	if _, err := tx.ExecContext(ctx, `delete from documents where id = ?`, docID); err != nil {
		return false, fmt.Errorf("store: remove document %s: %w", path, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("store: commit remove: %w", err)
	}

	n, _ := res.RowsAffected()
	if n > 0 {
		s.notify(path)
	}
	return n > 0, nil
}

const taskColumns = `id, source, parent, haschildren, open, actionable, prio, due, description`

func scanTask(scan func(dest ...any) error) (task.Task, error) {
	var t task.Task
	err := scan(&t.ID, &t.Source, &t.Parent, &t.HasChildren,
		&t.Open, &t.Actionable, &t.Priority, &t.Due, &t.Description)
	return t, err
}

func (s *Store) queryTasks(ctx context.Context, query string, args ...any) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("store: scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListTasks returns the ordered children of the given parent id; parent 0
// lists top level tasks across all documents.
func (s *Store) ListTasks(ctx context.Context, parentID int64) ([]task.Task, error) {
	return s.queryTasks(ctx, `select `+taskColumns+` from tasklist where parent = ? order by id`, parentID)
}

// ListAll returns every stored row in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]task.Task, error) {
	return s.queryTasks(ctx, `select `+taskColumns+` from tasklist order by id`)
}

// Get returns the row with the given id, or nil when absent.
func (s *Store) Get(ctx context.Context, id int64) (*task.Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx,
		`select `+taskColumns+` from tasklist where id = ?`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get task %d: %w", id, err)
	}
	return &t, nil
}

// Documents returns all known source documents keyed by id.
func (s *Store) Documents(ctx context.Context) (map[int64]Document, error) {
	rows, err := s.db.QueryContext(ctx, `select id, path, name from documents order by path`)
	if err != nil {
		return nil, fmt.Errorf("store: query documents: %w", err)
	}
	defer rows.Close()

	docs := make(map[int64]Document)
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Path, &d.Name); err != nil {
			return nil, fmt.Errorf("store: scan document: %w", err)
		}
		docs[d.ID] = d
	}
	return docs, rows.Err()
}

// DocumentOf resolves the source document of a task. Returns nil for
// stale references; callers filter those rows out of derived views.
func (s *Store) DocumentOf(ctx context.Context, t task.Task) (*Document, error) {
	var d Document
	err := s.db.QueryRowContext(ctx,
		`select id, path, name from documents where id = ?`, t.Source).Scan(&d.ID, &d.Path, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: document of task %d: %w", t.ID, err)
	}
	return &d, nil
}
