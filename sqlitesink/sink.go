package sqlitesink

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stationreach/core"
	"github.com/katalvlaran/stationreach/dump"
)

// RunMeta describes a run when it starts.
type RunMeta struct {
	Source        string // input extract path
	Cutoff        float64
	AllowProposed bool
}

// Sink is a dump.Sink writing one run inside a single transaction.
// Finish commits it; Abort rolls it back.
type Sink struct {
	ctx       context.Context
	runID     string
	tx        *sql.Tx
	node      *sql.Stmt
	edge      *sql.Stmt
	station   *sql.Stmt
	component int
	edges     int
	stations  int
}

var _ dump.Sink = (*Sink)(nil)

// BeginRun inserts a runs row with a fresh id and opens the transaction the
// returned Sink writes into. An empty runID generates a random one.
func (db *DB) BeginRun(ctx context.Context, runID string, meta RunMeta) (*Sink, error) {
	if runID == "" {
		runID = uuid.New().String()
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlitesink: begin: %w", err)
	}
	s := &Sink{ctx: ctx, runID: runID, tx: tx, component: -1}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO runs (run_id, started_at_utc, source, cutoff, allow_proposed) VALUES (?, ?, ?, ?, ?)",
		runID, time.Now().UTC().Format(time.RFC3339Nano), meta.Source, meta.Cutoff, meta.AllowProposed,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("sqlitesink: create run: %w", err)
	}

	// A node shared by several edges is written once, with the component it
	// was first reached in.
	if s.node, err = tx.PrepareContext(ctx, `
		INSERT INTO nodes (run_id, node_id, component, x, y, distance, station)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (run_id, node_id) DO NOTHING`); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("sqlitesink: prepare nodes: %w", err)
	}
	if s.edge, err = tx.PrepareContext(ctx,
		"INSERT INTO edges (run_id, seq, component, a_id, b_id) VALUES (?, ?, ?, ?, ?)"); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("sqlitesink: prepare edges: %w", err)
	}
	if s.station, err = tx.PrepareContext(ctx,
		"INSERT INTO stations (run_id, seq, node_id, x, y, distance, proposed) VALUES (?, ?, ?, ?, ?, ?, ?)"); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("sqlitesink: prepare stations: %w", err)
	}

	return s, nil
}

// RunID returns the id of the run being written.
func (s *Sink) RunID() string { return s.runID }

// Station implements dump.Sink.
func (s *Sink) Station(n *core.Node) error {
	_, err := s.station.ExecContext(s.ctx, s.runID, s.stations, n.ID, n.X, n.Y, n.Distance, n.Proposed)
	if err != nil {
		return fmt.Errorf("sqlitesink: station %d: %w", n.ID, err)
	}
	s.stations++

	return nil
}

// BeginComponent implements dump.Sink.
func (s *Sink) BeginComponent(index int) error {
	s.component = index
	return nil
}

// Edge implements dump.Sink.
func (s *Sink) Edge(a, b *core.Node) error {
	for _, n := range [2]*core.Node{a, b} {
		if _, err := s.node.ExecContext(s.ctx, s.runID, n.ID, s.component, n.X, n.Y, n.Distance, n.Station); err != nil {
			return fmt.Errorf("sqlitesink: node %d: %w", n.ID, err)
		}
	}
	if _, err := s.edge.ExecContext(s.ctx, s.runID, s.edges, s.component, a.ID, b.ID); err != nil {
		return fmt.Errorf("sqlitesink: edge %d-%d: %w", a.ID, b.ID, err)
	}
	s.edges++

	return nil
}

// Finish records the dump totals on the run row and commits.
func (s *Sink) Finish(res dump.Result) error {
	defer s.close()
	_, err := s.tx.ExecContext(s.ctx, `
		UPDATE runs SET finished_at_utc = ?, components = ?, nodes = ?, edges = ?, stations = ?
		WHERE run_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), res.Components, res.Nodes, res.Edges, res.Stations, s.runID,
	)
	if err != nil {
		s.tx.Rollback()
		return fmt.Errorf("sqlitesink: finish run: %w", err)
	}
	if err = s.tx.Commit(); err != nil {
		return fmt.Errorf("sqlitesink: commit: %w", err)
	}

	return nil
}

// Abort discards everything written for the run, including its runs row.
func (s *Sink) Abort() error {
	defer s.close()
	if err := s.tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return fmt.Errorf("sqlitesink: rollback: %w", err)
	}

	return nil
}

func (s *Sink) close() {
	for _, st := range []*sql.Stmt{s.node, s.edge, s.station} {
		if st != nil {
			st.Close()
		}
	}
}
