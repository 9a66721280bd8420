package ingest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationreach/builder"
	"github.com/katalvlaran/stationreach/core"
	"github.com/katalvlaran/stationreach/ingest"
)

// box is a 0.01° square whose south-west corner is the origin.
var box = ingest.Region{LonMin: 0, LonMax: 0.01, LatMin: 0, LatMax: 0.01, EarthRadius: ingest.MeanRadius}

func newIngestor(t *testing.T, opts ...core.StoreOption) (*core.Store, *ingest.Ingestor) {
	t.Helper()
	s := core.NewStore(opts...)
	b, err := builder.New(s)
	require.NoError(t, err)
	in, err := ingest.New(b, ingest.WithRegion(box))
	require.NoError(t, err)

	return s, in
}

func highway(id int64, refs ...int64) ingest.WayEvent {
	return ingest.WayEvent{ID: id, Tags: map[string]string{"highway": "residential"}, Refs: refs}
}

func TestNew_NilBuilder(t *testing.T) {
	_, err := ingest.New(nil)
	assert.ErrorIs(t, err, ingest.ErrNilBuilder)
	assert.Panics(t, func() { ingest.WithRegion(ingest.Region{}) })
	assert.Panics(t, func() { ingest.WithLogger(nil) })
}

// TestIngestor_BoundingBox ASSERTS an out-of-box node never reaches the store
// and is never a resolvable way target.
func TestIngestor_BoundingBox(t *testing.T) {
	s, in := newIngestor(t)
	src := ingest.NewSliceSource(
		ingest.NodeEvent{ID: 1, Lat: 0.001, Lon: 0.001},
		ingest.NodeEvent{ID: 2, Lat: 0.02, Lon: 0.005}, // north of box
		ingest.NodeEvent{ID: 3, Lat: 0.002, Lon: 0.002},
		ingest.NodeEvent{ID: 4, Lat: 0.01, Lon: 0.01}, // corner, inside
		highway(100, 1, 2, 3, 4),
	)

	st, err := in.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 4, st.NodeEvents)
	assert.Equal(t, 3, st.Nodes)
	assert.Equal(t, 1, st.OutOfBounds)
	_, ok := s.Lookup(2)
	assert.False(t, ok)
	assert.Equal(t, 2, s.EdgeCount(), "1-3 across the gap, 3-4")

	for _, h := range s.Handles() {
		for _, e := range s.Node(h).Edges {
			assert.NotEqual(t, int64(2), s.Node(e.To).ID)
		}
	}
}

// TestIngestor_Projection ASSERTS stored coordinates come from Region.Project.
func TestIngestor_Projection(t *testing.T) {
	s, in := newIngestor(t)
	require.NoError(t, in.Handle(ingest.NodeEvent{ID: 9, Lat: 0.005, Lon: 0.004}))

	h, ok := s.Lookup(9)
	require.True(t, ok)
	x, y := box.Project(0.005, 0.004)
	assert.Equal(t, x, s.Node(h).X)
	assert.Equal(t, y, s.Node(h).Y)
	assert.InDelta(t, 556, y, 1, "0.005° of latitude is about 556 m")
}

// TestIngestor_DuplicateNode ASSERTS a repeated id is counted, not re-created.
func TestIngestor_DuplicateNode(t *testing.T) {
	s, in := newIngestor(t)
	require.NoError(t, in.Handle(ingest.NodeEvent{ID: 1, Lat: 0.001, Lon: 0.001}))
	require.NoError(t, in.Handle(ingest.NodeEvent{ID: 1, Lat: 0.002, Lon: 0.002}))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, in.Stats().DuplicateNodes)
}

// TestIngestor_Capacity ASSERTS capacity exhaustion is fatal.
func TestIngestor_Capacity(t *testing.T) {
	_, in := newIngestor(t, core.WithCapacity(1))
	src := ingest.NewSliceSource(
		ingest.NodeEvent{ID: 1, Lat: 0.001, Lon: 0.001},
		ingest.NodeEvent{ID: 2, Lat: 0.002, Lon: 0.002},
	)
	_, err := in.Run(context.Background(), src)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
}

// TestIngestor_Stations ASSERTS node tags and way tags both mark stations,
// and station ways need not be routed.
func TestIngestor_Stations(t *testing.T) {
	s, in := newIngestor(t)
	src := ingest.NewSliceSource(
		ingest.NodeEvent{ID: 1, Lat: 0.001, Lon: 0.001, Tags: map[string]string{"railway": "subway_entrance"}},
		ingest.NodeEvent{ID: 2, Lat: 0.002, Lon: 0.001},
		ingest.NodeEvent{ID: 3, Lat: 0.003, Lon: 0.001},
		ingest.NodeEvent{ID: 4, Lat: 0.004, Lon: 0.001,
			Tags: map[string]string{"railway": "subway_entrance", "proposed": "yes"}},
		ingest.WayEvent{ID: 50, Tags: map[string]string{"station": "subway"}, Refs: []int64{2, 3}},
		ingest.WayEvent{ID: 51, Tags: map[string]string{"building": "yes"}, Refs: []int64{1, 2}},
	)
	st, err := in.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, st.StationNodes)
	assert.Equal(t, 2, st.WayEvents)
	assert.Equal(t, 0, s.EdgeCount(), "neither way is routable")

	stats := s.Stats()
	assert.Equal(t, 4, stats.Stations)
	assert.Equal(t, 1, stats.Proposed)
}

func TestIngestor_Canceled(t *testing.T) {
	_, in := newIngestor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := in.Run(ctx, ingest.NewSliceSource(ingest.NodeEvent{ID: 1}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSliceSource(t *testing.T) {
	src := ingest.NewSliceSource(ingest.NodeEvent{ID: 1}, highway(2))
	assert.Nil(t, src.Event())

	var got []ingest.Event
	for src.Scan() {
		got = append(got, src.Event())
	}
	assert.Len(t, got, 2)
	assert.False(t, src.Scan())
	assert.Nil(t, src.Event())
	assert.NoError(t, src.Err())
	assert.NoError(t, src.Close())
}
