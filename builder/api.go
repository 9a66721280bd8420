// SPDX-License-Identifier: MIT
// Package: stationreach/builder
//
// api.go - the Builder: ways in, deduplicated mirrored edges out.
//
// Design contract:
//   - One Builder per Store; it never creates nodes, it only resolves ids.
//   - Way classification (route / station / proposed) happens upstream; the
//     Builder trusts the flags on Way.
//   - Recoverable conditions are counted in Stats and logged at debug level.
//     Only errors from the store (which indicate a programming error) escape.
//   - Determinism: same ways in the same order ⇒ identical adjacency order.

package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/stationreach/core"
)

// Way is an ordered chain of node references plus its classification.
type Way struct {
	// ID is the external way id; used only for diagnostics.
	ID int64

	// Refs are external node ids in way order.
	Refs []int64

	// Route marks the way as part of the routable network. Only route ways
	// contribute edges.
	Route bool

	// Station marks every resolved ref as a station, whether or not the way
	// is routed.
	Station bool

	// Proposed qualifies Station: the station is not yet operational.
	Proposed bool
}

// Stats counts what the Builder did and what it skipped.
type Stats struct {
	Ways        int // ways passed to AddWay
	RoutedWays  int // ways with Route set
	StationWays int // ways with Station set
	Refs        int // refs seen across all ways
	Unresolved  int // refs that failed Store.Lookup
	Truncated   int // refs dropped by GapTruncate after the first gap
	EdgesAdded  int // new undirected edges stored
	Duplicates  int // AddEdge calls that found the edge already present
	SelfLoops   int // consecutive refs resolving to the same node
	MarkedNodes int // station markings applied
}

// Builder links ways into a core.Store.
type Builder struct {
	store *core.Store
	cfg   builderConfig
	stats Stats

	// chain is reused across AddWay calls.
	chain []core.Handle
}

// New returns a Builder writing into s.
// Returns ErrNilStore if s is nil.
func New(s *core.Store, opts ...Option) (*Builder, error) {
	if s == nil {
		return nil, ErrNilStore
	}

	return &Builder{store: s, cfg: newBuilderConfig(opts...)}, nil
}

// Store returns the store the Builder writes into.
func (b *Builder) Store() *core.Store { return b.store }

// Stats returns a snapshot of the counters.
func (b *Builder) Stats() Stats { return b.stats }

// GapPolicy returns the configured gap policy.
func (b *Builder) GapPolicy() GapPolicy { return b.cfg.gap }

// AddEdge links x and y. A duplicate or a self-loop is a counted no-op.
//
// Returns:
//   - bool: true iff a new undirected edge was stored.
//
// Complexity: O(deg(x)).
func (b *Builder) AddEdge(x, y core.Handle) (bool, error) {
	if x == y {
		b.stats.SelfLoops++
		return false, nil
	}
	added, err := b.store.AddEdge(x, y)
	if err != nil {
		return false, fmt.Errorf("AddEdge(%d,%d): %w", x, y, err)
	}
	if !added {
		b.stats.Duplicates++
		if b.cfg.log.Enabled(context.Background(), slog.LevelDebug) {
			b.cfg.log.Debug("ignoring redundant edge",
				"from", b.store.Node(x).ID, "to", b.store.Node(y).ID)
		}
		return false, nil
	}
	b.stats.EdgesAdded++

	return true, nil
}

// AddWay resolves w.Refs against the store and applies w's classification.
//
// Steps:
//  1. Resolve refs in order. An unresolved ref is skipped and logged; how it
//     affects linking depends on the gap policy:
//     link     – the chain continues across it;
//     split    – the chain restarts after it;
//     truncate – resolution stops at it.
//  2. If w.Station, mark every resolved node as a station (w.Proposed kept).
//  3. If w.Route, link each pair of consecutive nodes in each chain.
//
// Complexity: O(len(Refs)·d) where d is the largest node degree touched.
func (b *Builder) AddWay(w Way) error {
	b.stats.Ways++
	if w.Route {
		b.stats.RoutedWays++
	}
	if w.Station {
		b.stats.StationWays++
	}

	// 1) Resolve into b.chain; breaks[i] marks a chain start for GapSplit.
	b.chain = b.chain[:0]
	var breaks []int
	pendingBreak := false
	for i, ref := range w.Refs {
		b.stats.Refs++
		h, ok := b.store.Lookup(ref)
		if !ok {
			b.stats.Unresolved++
			b.cfg.log.Debug("unknown node", "way", w.ID, "ref", ref)
			if b.cfg.gap == GapTruncate {
				b.stats.Truncated += len(w.Refs) - i - 1
				break
			}
			pendingBreak = b.cfg.gap == GapSplit
			continue
		}
		if pendingBreak && len(b.chain) > 0 {
			breaks = append(breaks, len(b.chain))
		}
		pendingBreak = false
		b.chain = append(b.chain, h)
	}

	// 2) Station marking is independent of routing.
	if w.Station {
		for _, h := range b.chain {
			if err := b.store.MarkStation(h, w.Proposed); err != nil {
				return fmt.Errorf("AddWay(%d): %w", w.ID, err)
			}
			b.stats.MarkedNodes++
		}
	}
	if !w.Route {
		return nil
	}

	// 3) Link consecutive entries, skipping pairs that straddle a break.
	next := 0
	for i := 1; i < len(b.chain); i++ {
		if next < len(breaks) && breaks[next] == i {
			next++
			continue
		}
		if _, err := b.AddEdge(b.chain[i-1], b.chain[i]); err != nil {
			return fmt.Errorf("AddWay(%d): %w", w.ID, err)
		}
	}

	return nil
}
