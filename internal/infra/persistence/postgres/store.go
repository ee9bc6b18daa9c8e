// Package postgres provides an alternate relational sink writing the same
// six-table rendering to a Postgres database instead of a SQLite file.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"todoseed/internal/sink"
	"todoseed/pkg/domain"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.RelationalSink = (*Store)(nil)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/todoseed?sslmode=disable"
)

// schema is the Postgres flavor of the relational DDL. Columns are typed
// and reference constraints are left unenforced: the application root
// sentinel in subteams.parent_team is deliberately not a teams row, and the
// SQLite rendering does not enforce them either.
var schema = []string{
	`CREATE TABLE users (
		uid TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE teams (uid TEXT PRIMARY KEY)`,
	`CREATE TABLE subteams (child_team TEXT, parent_team TEXT)`,
	`CREATE TABLE team_memberships (
		user_uid TEXT,
		team_uid TEXT
	)`,
	`CREATE TABLE lists (uid TEXT PRIMARY KEY, owner TEXT, name TEXT NOT NULL, readers TEXT, editors TEXT)`,
	`CREATE TABLE tasks (name TEXT NOT NULL, state BOOLEAN NOT NULL, list_uid TEXT)`,
}

// Store writes the relational rendering of a graph to Postgres over a
// single connection pool.
type Store struct {
	db *sql.DB
}

// New opens the target database (falling back to a local default DSN),
// drops any tables left by a previous run, and applies the schema.
func New(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open(defaultDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	// Dependent tables first, reversing the insertion order.
	drop := make([]string, len(sink.Tables))
	for i, table := range sink.Tables {
		drop[len(sink.Tables)-1-i] = table
	}
	if _, err := db.ExecContext(ctx,
		`DROP TABLE IF EXISTS `+strings.Join(drop, ", ")); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("drop previous tables: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// WriteGraph mirrors the SQLite sink's batch order: users, teams with
// hierarchy edges, memberships, lists, tasks, each group in its own
// transaction.
func (s *Store) WriteGraph(ctx context.Context, g *domain.Graph) error {
	rows := sink.RelationalRows(g)

	if err := s.batch(ctx, "users", func(ctx context.Context, tx *sql.Tx) error {
		return execEach(ctx, tx, `INSERT INTO users VALUES ($1, $2)`, len(rows.Users), func(i int) []any {
			r := rows.Users[i]
			return []any{r.UID, r.Name}
		})
	}); err != nil {
		return err
	}

	if err := s.batch(ctx, "teams", func(ctx context.Context, tx *sql.Tx) error {
		if err := execEach(ctx, tx, `INSERT INTO teams VALUES ($1)`, len(rows.Teams), func(i int) []any {
			return []any{rows.Teams[i].UID}
		}); err != nil {
			return err
		}
		return execEach(ctx, tx, `INSERT INTO subteams VALUES ($1, $2)`, len(rows.Subteams), func(i int) []any {
			r := rows.Subteams[i]
			return []any{r.Child, r.Parent}
		})
	}); err != nil {
		return err
	}

	if err := s.batch(ctx, "memberships", func(ctx context.Context, tx *sql.Tx) error {
		return execEach(ctx, tx, `INSERT INTO team_memberships VALUES ($1, $2)`, len(rows.Memberships), func(i int) []any {
			r := rows.Memberships[i]
			return []any{r.UserUID, r.TeamUID}
		})
	}); err != nil {
		return err
	}

	if err := s.batch(ctx, "lists", func(ctx context.Context, tx *sql.Tx) error {
		return execEach(ctx, tx, `INSERT INTO lists VALUES ($1, $2, $3, $4, $5)`, len(rows.Lists), func(i int) []any {
			r := rows.Lists[i]
			return []any{r.UID, r.Owner, r.Name, r.Readers, r.Editors}
		})
	}); err != nil {
		return err
	}

	return s.batch(ctx, "tasks", func(ctx context.Context, tx *sql.Tx) error {
		return execEach(ctx, tx, `INSERT INTO tasks VALUES ($1, $2, $3)`, len(rows.Tasks), func(i int) []any {
			r := rows.Tasks[i]
			return []any{r.Name, r.Done, r.ListUID}
		})
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

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }
