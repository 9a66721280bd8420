// Package sqlitesink exports a distance dump into an SQLite database, one
// run per pipeline invocation, next to (or instead of) the text stream.
package sqlitesink

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ErrRunNotFound indicates a run id with no row in runs.
var ErrRunNotFound = errors.New("sqlitesink: run not found")

// DB wraps an SQLite connection holding exported runs.
type DB struct {
	conn *sql.DB
}

// Connect opens (creating if needed) the database at path and applies the
// schema.
func Connect(ctx context.Context, path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlitesink: open: %w", err)
	}
	// SQLite has a single writer; one connection keeps transactions serial.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlitesink: ping: %w", err)
	}
	db := &DB{conn: conn}
	if err = db.EnsureSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("sqlitesink: schema: %w", err)
	}

	return nil
}

// Close closes the connection.
func (db *DB) Close() error { return db.conn.Close() }

// Conn returns the underlying connection for ad-hoc queries.
func (db *DB) Conn() *sql.DB { return db.conn }

// Run is one row of the runs table.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    *time.Time
	Source        string
	Cutoff        float64
	AllowProposed bool
	Components    int
	Nodes         int
	Edges         int
	Stations      int
}

// Run loads the run with the given id.
func (db *DB) Run(ctx context.Context, id string) (Run, error) {
	var (
		r        Run
		started  string
		finished sql.NullString
		counts   [4]sql.NullInt64
	)
	err := db.conn.QueryRowContext(ctx, `
		SELECT run_id, started_at_utc, finished_at_utc, source, cutoff, allow_proposed,
		       components, nodes, edges, stations
		FROM runs WHERE run_id = ?`, id,
	).Scan(&r.ID, &started, &finished, &r.Source, &r.Cutoff, &r.AllowProposed,
		&counts[0], &counts[1], &counts[2], &counts[3])
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("sqlitesink: load run: %w", err)
	}

	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Run{}, fmt.Errorf("sqlitesink: run %s: %w", id, err)
	}
	if finished.Valid {
		t, perr := time.Parse(time.RFC3339Nano, finished.String)
		if perr != nil {
			return Run{}, fmt.Errorf("sqlitesink: run %s: %w", id, perr)
		}
		r.FinishedAt = &t
	}
	r.Components = int(counts[0].Int64)
	r.Nodes = int(counts[1].Int64)
	r.Edges = int(counts[2].Int64)
	r.Stations = int(counts[3].Int64)

	return r, nil
}

// ReachableShare returns the fraction of exported nodes of run id whose
// distance is below its cutoff.
func (db *DB) ReachableShare(ctx context.Context, id string) (float64, error) {
	var total, reachable sql.NullInt64
	err := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*), SUM(CASE WHEN n.distance < r.cutoff THEN 1 ELSE 0 END)
		FROM nodes n JOIN runs r ON r.run_id = n.run_id
		WHERE n.run_id = ?`, id,
	).Scan(&total, &reachable)
	if err != nil {
		return 0, fmt.Errorf("sqlitesink: reachable share: %w", err)
	}
	if total.Int64 == 0 {
		return 0, nil
	}

	return float64(reachable.Int64) / float64(total.Int64), nil
}
