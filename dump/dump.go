// Package dump partitions a labeled core.Store into connected components and
// streams each component's edges and the station markers to a Sink.
//
// Traversal:
//
//   - Nodes are visited in ascending external id.
//   - A node with no edges is never part of a component.
//   - Each unvisited node with edges roots a new component and is explored
//     depth-first with an explicit stack of (node, next edge) frames, which
//     yields exactly the order of the recursive walk without its stack depth.
//   - A half-edge u→v is emitted only when v.ID > u.ID, so every undirected
//     edge appears once.
//
// Complexity:
//
//   - Time:   O(V log V + E) (id sort plus one pass over every half-edge).
//   - Memory: O(V) for the handle order and the frame stack.
//
// Errors:
//
//   - ErrNilStore, ErrNilSink for missing inputs.
//   - ctx.Err() if the context is done.
//   - any error returned by the Sink.
package dump

import (
	"fmt"

	"github.com/katalvlaran/stationreach/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	h    core.Handle
	next int // index of the next edge to examine
}

type walker struct {
	s     *core.Store
	sink  Sink
	opts  Options
	res   Result
	stack []frame
}

// Dump resets all traversal tags and streams s to sink.
// Running Dump twice on the same store yields the same call sequence.
func Dump(s *core.Store, sink Sink, opts ...Option) (Result, error) {
	// 1. Validate inputs.
	if s == nil {
		return Result{}, ErrNilStore
	}
	if sink == nil {
		return Result{}, ErrNilSink
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Clear node and edge tags left by a previous dump.
	s.ResetVisited()

	w := &walker{s: s, sink: sink, opts: o}
	for _, h := range s.Handles() {
		if err := o.Ctx.Err(); err != nil {
			return w.res, err
		}
		n := s.Node(h)

		// 4. Station markers interleave with components in id order.
		if n.Station && (o.AllowProposed || !n.Proposed) {
			if err := sink.Station(n); err != nil {
				return w.res, fmt.Errorf("dump: station %d: %w", n.ID, err)
			}
			w.res.Stations++
		}

		// 5. New component root?
		if n.Visited || len(n.Edges) == 0 {
			continue
		}
		if err := sink.BeginComponent(w.res.Components); err != nil {
			return w.res, fmt.Errorf("dump: component %d: %w", w.res.Components, err)
		}
		w.res.Components++
		if err := w.walk(h); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// walk explores the component containing root.
func (w *walker) walk(root core.Handle) error {
	w.enter(root)
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		n := w.s.Node(top.h)
		if top.next == len(n.Edges) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		e := &n.Edges[top.next]
		top.next++

		m := w.s.Node(e.To)
		if !e.Visited && m.ID > n.ID {
			if err := w.sink.Edge(n, m); err != nil {
				return fmt.Errorf("dump: edge %d-%d: %w", n.ID, m.ID, err)
			}
			w.res.Edges++
		}
		e.Visited = true
		if !m.Visited {
			if err := w.opts.Ctx.Err(); err != nil {
				return err
			}
			w.enter(e.To)
		}
	}

	return nil
}

func (w *walker) enter(h core.Handle) {
	w.s.Node(h).Visited = true
	w.res.Nodes++
	w.stack = append(w.stack, frame{h: h})
}
