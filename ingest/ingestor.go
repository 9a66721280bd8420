package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/stationreach/builder"
	"github.com/katalvlaran/stationreach/core"
)

// ErrNilBuilder indicates New was called without a builder.
var ErrNilBuilder = errors.New("ingest: nil builder")

// Stats counts what the Ingestor accepted and what it dropped.
type Stats struct {
	NodeEvents     int // NodeEvents seen
	WayEvents      int // WayEvents seen
	Nodes          int // nodes created in the store
	OutOfBounds    int // nodes outside the region
	DuplicateNodes int // nodes whose id was already stored
	StationNodes   int // nodes tagged as stations
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithRegion sets the bounding box and projection. Panics if r is invalid.
func WithRegion(r Region) Option {
	if err := r.Validate(); err != nil {
		panic(err.Error())
	}
	return func(in *Ingestor) { in.region = r }
}

// WithClassifier replaces the tag rules.
func WithClassifier(c Classifier) Option {
	return func(in *Ingestor) { in.classifier = c }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("ingest: WithLogger(nil)")
	}
	return func(in *Ingestor) { in.log = l }
}

// Ingestor feeds decoded events into a store through a builder.
type Ingestor struct {
	store      *core.Store
	builder    *builder.Builder
	region     Region
	classifier Classifier
	log        *slog.Logger
	stats      Stats
}

// New returns an Ingestor writing through b into b.Store().
func New(b *builder.Builder, opts ...Option) (*Ingestor, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	in := &Ingestor{
		store:      b.Store(),
		builder:    b,
		region:     DefaultRegion(),
		classifier: DefaultClassifier(),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(in)
	}

	return in, nil
}

// Stats returns a snapshot of the counters.
func (in *Ingestor) Stats() Stats { return in.stats }

// Region returns the region in effect.
func (in *Ingestor) Region() Region { return in.region }

// Handle dispatches one event. Only store failures (capacity) and builder
// failures are returned; everything else is counted.
func (in *Ingestor) Handle(ev Event) error {
	switch e := ev.(type) {
	case NodeEvent:
		return in.node(e)
	case WayEvent:
		return in.way(e)
	case nil:
		return nil
	default:
		// Event is sealed; this is unreachable outside the package.
		return fmt.Errorf("ingest: unexpected event %T", ev)
	}
}

func (in *Ingestor) node(e NodeEvent) error {
	in.stats.NodeEvents++
	if !in.region.Contains(e.Lat, e.Lon) {
		in.stats.OutOfBounds++
		return nil
	}
	if _, dup := in.store.Lookup(e.ID); dup {
		in.stats.DuplicateNodes++
		in.log.Debug("duplicate node", "id", e.ID)
		return nil
	}

	x, y := in.region.Project(e.Lat, e.Lon)
	h, err := in.store.Create(e.ID, x, y)
	if err != nil {
		return err
	}
	in.stats.Nodes++

	if cl := in.classifier.Classify(e.Tags); cl.Station {
		in.stats.StationNodes++
		if err = in.store.MarkStation(h, cl.Proposed); err != nil {
			return err
		}
	}

	return nil
}

func (in *Ingestor) way(e WayEvent) error {
	in.stats.WayEvents++
	cl := in.classifier.Classify(e.Tags)
	if !cl.Route && !cl.Station {
		return nil
	}

	return in.builder.AddWay(builder.Way{
		ID:       e.ID,
		Refs:     e.Refs,
		Route:    cl.Route,
		Station:  cl.Station,
		Proposed: cl.Proposed,
	})
}

// Run drains src through Handle. It stops at the first fatal error, at a
// decoder error, or when ctx is done. src is not closed.
func (in *Ingestor) Run(ctx context.Context, src Source) (Stats, error) {
	n := 0
	for src.Scan() {
		if n++; n&0xfff == 0 {
			if err := ctx.Err(); err != nil {
				return in.stats, err
			}
		}
		if err := in.Handle(src.Event()); err != nil {
			return in.stats, err
		}
	}
	if err := src.Err(); err != nil {
		return in.stats, err
	}
	if err := ctx.Err(); err != nil {
		return in.stats, err
	}

	bs := in.builder.Stats()
	in.log.Info("ingested",
		"nodes", in.store.Len(), "edges", in.store.EdgeCount(),
		"out_of_bounds", in.stats.OutOfBounds, "unresolved_refs", bs.Unresolved)

	return in.stats, nil
}
