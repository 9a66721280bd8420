package distance

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"

	"github.com/katalvlaran/stationreach/core"
)

// nodePoint adapts a stored node to orb.Pointer for the spatial index.
type nodePoint struct {
	h core.Handle
	p orb.Point
}

func (np nodePoint) Point() orb.Point { return np.p }

func pointOf(n *core.Node) orb.Point { return orb.Point{n.X, n.Y} }

// isSource reports whether n seeds the labeling.
func (o *Options) isSource(n *core.Node) bool {
	return n.Station && (o.AllowProposed || !n.Proposed)
}

// buildIndex puts every node in a quadtree bounded by the node extent.
func buildIndex(s *core.Store) (*quadtree.Quadtree, error) {
	if s.Len() == 0 {
		return quadtree.New(orb.Bound{}), nil
	}
	b := pointOf(s.Node(0)).Bound()
	for i := 1; i < s.Len(); i++ {
		b = b.Extend(pointOf(s.Node(core.Handle(i))))
	}
	qt := quadtree.New(b.Pad(1))
	for i := 0; i < s.Len(); i++ {
		h := core.Handle(i)
		if err := qt.Add(nodePoint{h: h, p: pointOf(s.Node(h))}); err != nil {
			return nil, err
		}
	}

	return qt, nil
}

// seed assigns initial distances and queues every seeded node.
//
// Exact seeding (radius 0) gives each source distance 0. Capture seeding
// gives every node within the radius of a source its straight-line distance
// to the nearest such source. Only strict decreases apply, so the order in
// which sources are visited does not matter.
func (r *runner) seed() error {
	var qt *quadtree.Quadtree
	if r.opts.CaptureRadius > 0 {
		var err error
		if qt, err = buildIndex(r.s); err != nil {
			return err
		}
	}

	var buf []orb.Pointer
	done := 0
	for _, h := range r.sources {
		src := r.s.Node(h)
		if qt == nil {
			r.update(h, 0)
		} else {
			at := pointOf(src)
			buf = qt.InBound(buf[:0], at.Bound().Pad(r.opts.CaptureRadius))
			for _, p := range buf {
				np := p.(nodePoint)
				d := planar.Distance(at, np.p)
				if d > r.opts.CaptureRadius {
					continue
				}
				r.update(np.h, d)
			}
		}
		done++
		r.opts.Logger.Debug("seeded station", "done", done, "of", len(r.sources), "id", src.ID)
	}

	return nil
}
