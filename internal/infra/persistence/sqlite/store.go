// Package sqlite provides the default relational sink: a single SQLite file
// recreated from scratch on every run.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"todoseed/internal/sink"
	"todoseed/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.RelationalSink = (*Store)(nil)

// Store writes the relational rendering of a graph to a SQLite file over a
// single connection.
type Store struct {
	db   *sql.DB
	path string
}

// New creates the target database file, removing any previous file at the
// same path first, and applies the schema. Partial output from an earlier
// failed run is therefore always discarded, never repaired.
func New(path string) (*Store, error) {
	if path == "" {
		path = "entities.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove previous database: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, stmt := range sink.Schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// WriteGraph inserts every row of the relational rendering in fixed batches
// per table group, reference tables before dependent tables: users, then
// teams with their hierarchy edges, then memberships, lists, and tasks.
// Each batch commits independently; a crash between batches leaves a
// partially populated database that New will discard on the next run.
func (s *Store) WriteGraph(ctx context.Context, g *domain.Graph) error {
	rows := sink.RelationalRows(g)

	if err := s.insertBatch(ctx, "users", `INSERT INTO users VALUES (?, ?)`, len(rows.Users), func(i int) []any {
		r := rows.Users[i]
		return []any{r.UID, r.Name}
	}); err != nil {
		return err
	}

	if err := s.batch(ctx, "teams", func(ctx context.Context, tx *sql.Tx) error {
		if err := execEach(ctx, tx, `INSERT INTO teams VALUES (?)`, len(rows.Teams), func(i int) []any {
			return []any{rows.Teams[i].UID}
		}); err != nil {
			return err
		}
		return execEach(ctx, tx, `INSERT INTO subteams VALUES (?, ?)`, len(rows.Subteams), func(i int) []any {
			r := rows.Subteams[i]
			return []any{r.Child, r.Parent}
		})
	}); err != nil {
		return err
	}

	if err := s.insertBatch(ctx, "memberships", `INSERT INTO team_memberships VALUES (?, ?)`, len(rows.Memberships), func(i int) []any {
		r := rows.Memberships[i]
		return []any{r.UserUID, r.TeamUID}
	}); err != nil {
		return err
	}

	if err := s.insertBatch(ctx, "lists", `INSERT INTO lists VALUES (?, ?, ?, ?, ?)`, len(rows.Lists), func(i int) []any {
		r := rows.Lists[i]
		return []any{r.UID, r.Owner, r.Name, r.Readers, r.Editors}
	}); err != nil {
		return err
	}

	return s.insertBatch(ctx, "tasks", `INSERT INTO tasks VALUES (?, ?, ?)`, len(rows.Tasks), func(i int) []any {
		r := rows.Tasks[i]
		return []any{r.Name, r.Done, r.ListUID}
	})
}

// insertBatch runs one insert statement for n rows inside its own
// transaction.
func (s *Store) insertBatch(ctx context.Context, group, query string, n int, args func(i int) []any) error {
	return s.batch(ctx, group, func(ctx context.Context, tx *sql.Tx) error {
		return execEach(ctx, tx, query, n, args)
	})
}

func (s *Store) batch(ctx context.Context, group string, fn func(ctx context.Context, tx *sql.Tx) error) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("phase relational %s: begin: %w", group, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if err := fn(ctx, tx); err != nil {
		retErr = fmt.Errorf("phase relational %s: %w", group, err)
		return retErr
	}
	if err := tx.Commit(); err != nil {
		retErr = fmt.Errorf("phase relational %s: commit: %w", group, err)
		return retErr
	}
	return nil
}

func execEach(ctx context.Context, tx *sql.Tx, query string, n int, args func(i int) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }
