// Package distance labels every node of a core.Store with its shortest
// network distance to the nearest station.
//
// Complexity:
//
//   - Weights: O(V + E), computed once per pass.
//   - Seeding: O(S·k) with a quadtree range query per source (k = nodes in
//     the capture box), O(V log V) to build the index.
//   - Relaxation: label-correcting worklist. Each pop costs O(deg); a node is
//     re-queued only after a strict decrease, so termination is guaranteed,
//     but the worst case is O(V·E) like Bellman-Ford.
//   - Space: O(V) for the worklist and its queued flags.
//
// Notes on implementation choices:
//
//   - No heap. Relaxation is driven by a worklist of dirty nodes (FIFO by
//     default, LIFO on request), so memory stays O(V) no matter how long a
//     chain of improving relaxations gets.
//   - The unreachable sentinel doubles as the cutoff: a candidate distance is
//     accepted only if it is strictly below the current one, and every node
//     starts at the sentinel, so nothing at or beyond it is ever written.
package distance

import (
	"fmt"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/stationreach/core"
)

// Label computes, for every node in s, the shortest weighted path distance
// to the nearest source and stores it in Node.Distance. Edge weights are
// recomputed from node coordinates and stored in Edge.Weight.
//
// Returns:
//
//   - Result: counts for the pass.
//   - err:    ErrNilStore, ErrBadCutoff or ErrBadRadius on invalid input.
//
// A node with no path to any source within the cutoff keeps the sentinel;
// that is a normal outcome, reported in Result.Unreachable.
func Label(s *core.Store, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if s == nil {
		return Result{}, ErrNilStore
	}
	if cfg.Unreachable <= 0 {
		return Result{}, ErrBadCutoff
	}
	if cfg.CaptureRadius < 0 || cfg.CaptureRadius >= cfg.Unreachable {
		return Result{}, fmt.Errorf("%w: radius %g, unreachable %g", ErrBadRadius, cfg.CaptureRadius, cfg.Unreachable)
	}

	// 2) Prepare: weights and sentinel distances.
	r := &runner{s: s, opts: cfg, wl: newWorklist(cfg.Queue, s.Len())}
	r.prepare()
	r.res.Cutoff = cfg.Unreachable
	r.res.Sources = len(r.sources)
	cfg.Logger.Debug("prepared routing", "nodes", s.Len(), "sources", len(r.sources))

	// 3) Seed and relax.
	if err := r.seed(); err != nil {
		return Result{}, fmt.Errorf("distance: seeding: %w", err)
	}
	r.res.Seeds = r.wl.len()
	r.process()

	// 4) Summarize.
	r.summarize()
	cfg.Logger.Debug("labeling done",
		"reachable", r.res.Reachable, "unreachable", r.res.Unreachable,
		"updates", r.res.Updates, "pops", r.res.Pops)

	return r.res, nil
}

// runner holds the mutable state for a single labeling pass.
type runner struct {
	s       *core.Store
	opts    Options
	wl      *worklist
	sources []core.Handle // in handle order
	res     Result
}

// prepare resets distances to the sentinel, computes edge weights and
// collects sources.
func (r *runner) prepare() {
	var i, j int
	for i = 0; i < r.s.Len(); i++ {
		h := core.Handle(i)
		n := r.s.Node(h)
		n.Distance = r.opts.Unreachable
		at := pointOf(n)
		for j = range n.Edges {
			n.Edges[j].Weight = planar.Distance(at, pointOf(r.s.Node(n.Edges[j].To)))
		}
		if r.opts.isSource(n) {
			r.sources = append(r.sources, h)
		}
	}
}

// update lowers h's distance to d if that is a strict improvement and
// queues h. It reports whether the distance changed.
func (r *runner) update(h core.Handle, d float64) bool {
	n := r.s.Node(h)
	if d >= n.Distance {
		return false
	}
	if r.opts.OnRelax != nil {
		r.opts.OnRelax(h, n.Distance, d)
	}
	n.Distance = d
	r.res.Updates++
	r.wl.push(h)

	return true
}

// process drains the worklist. Popping u and relaxing every outgoing edge
// is the iterative equivalent of recursing into each improved neighbor.
func (r *runner) process() {
	for {
		u, ok := r.wl.pop()
		if !ok {
			return
		}
		r.res.Pops++
		n := r.s.Node(u)
		d := n.Distance
		for i := range n.Edges {
			e := &n.Edges[i]
			r.update(e.To, d+e.Weight)
		}
	}
}

func (r *runner) summarize() {
	for i := 0; i < r.s.Len(); i++ {
		d := r.s.Node(core.Handle(i)).Distance
		if d >= r.opts.Unreachable {
			r.res.Unreachable++
			continue
		}
		r.res.Reachable++
		if d > r.res.Farthest {
			r.res.Farthest = d
		}
	}
}
