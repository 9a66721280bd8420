package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationreach/builder"
	"github.com/katalvlaran/stationreach/config"
	"github.com/katalvlaran/stationreach/core"
	"github.com/katalvlaran/stationreach/distance"
	"github.com/katalvlaran/stationreach/ingest"
)

func TestDefault_IsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, ingest.DefaultRegion(), c.Region)
	assert.Equal(t, core.DefaultCapacity, c.Capacity)
	assert.Equal(t, 1000.0, c.Routing.Unreachable)
	assert.Equal(t, 80.0, c.Routing.CaptureRadius)
	assert.False(t, c.Routing.AllowProposed)
	assert.Equal(t, builder.GapLink, c.Routing.Gap)
	assert.Equal(t, distance.FIFO, c.Routing.Queue)
	assert.Equal(t, config.Output{Distance: true}, c.Output)
}

func TestParse_Empty(t *testing.T) {
	c, err := config.Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestParse_Full(t *testing.T) {
	src := `
region {
  lon_min      = 2.05
  lon_max      = 2.25
  lat_min      = 41.32
  lat_max      = 41.47
  earth_radius = earth.equatorial_radius
}

store {
  capacity = 500000
}

routing {
  unreachable    = 1500
  capture_radius = 0
  allow_proposed = true
  gap_policy     = "Split"
  queue          = "lifo"
}

classify {
  route {
    key    = "highway"
    values = ["footway", "pedestrian"]
  }
  station {
    key    = "railway"
    values = ["subway_entrance"]
  }
  station {
    key    = "public_transport"
    values = ["station"]
  }
}

output {
  precision         = 2
  distance          = false
  station_indicator = true
}
`
	c, err := config.Parse([]byte(src), "bcn.hcl")
	require.NoError(t, err)

	assert.Equal(t, ingest.Region{
		LonMin: 2.05, LonMax: 2.25, LatMin: 41.32, LatMax: 41.47, EarthRadius: ingest.EquatorialRadius,
	}, c.Region)
	assert.Equal(t, 500000, c.Capacity)
	assert.Equal(t, config.Routing{
		Unreachable: 1500, CaptureRadius: 0, AllowProposed: true,
		Gap: builder.GapSplit, Queue: distance.LIFO,
	}, c.Routing)
	assert.Equal(t, config.Output{Precision: 2, Distance: false, StationIndicator: true}, c.Output)

	require.Len(t, c.Classifier.Route, 1)
	assert.Equal(t, []string{"footway", "pedestrian"}, c.Classifier.Route[0].Values)
	require.Len(t, c.Classifier.Station, 2)
	assert.Equal(t, "public_transport", c.Classifier.Station[1].Key)
	assert.Equal(t, ingest.DefaultClassifier().Proposed, c.Classifier.Proposed, "absent list keeps the default")
}

// TestParse_Partial ASSERTS unset attributes keep their defaults.
func TestParse_Partial(t *testing.T) {
	c, err := config.Parse([]byte(`routing { capture_radius = earth.mean_radius / earth.mean_radius * 40 }`), "p.hcl")
	require.NoError(t, err)

	assert.InDelta(t, 40.0, c.Routing.CaptureRadius, 1e-9)
	assert.Equal(t, 1000.0, c.Routing.Unreachable)
	assert.Equal(t, ingest.DefaultRegion(), c.Region)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"syntax", `routing {`, config.ErrParse},
		{"unknown attribute", `routing { speed = 5 }`, config.ErrParse},
		{"unknown block", `render { width = 800 }`, config.ErrParse},
		{"duplicate block", "store {}\nstore {}", config.ErrParse},
		{"unknown variable", `routing { unreachable = moon.radius }`, config.ErrParse},
		{"rule without key", `classify { route {} }`, config.ErrParse},
		{"empty box", `region { lon_max = -58.54 }`, config.ErrBadRegion},
		{"bad radius", `region { earth_radius = 0 }`, config.ErrBadRegion},
		{"capacity", `store { capacity = 0 }`, config.ErrBadStore},
		{"cutoff", `routing { unreachable = 0 }`, config.ErrBadRouting},
		{"radius above cutoff", `routing { capture_radius = 1000 }`, config.ErrBadRouting},
		{"negative radius", `routing { capture_radius = -1 }`, config.ErrBadRouting},
		{"gap policy", `routing { gap_policy = "bridge" }`, config.ErrUnknownPolicy},
		{"queue", `routing { queue = "heap" }`, config.ErrUnknownPolicy},
		{"precision", `output { precision = 18 }`, config.ErrBadOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), tc.name+".hcl")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_WrapsUnderlyingErrors(t *testing.T) {
	_, err := config.Parse([]byte(`routing { gap_policy = "bridge" }`), "g.hcl")
	assert.ErrorIs(t, err, builder.ErrUnknownGapPolicy)

	_, err = config.Parse([]byte(`region { lat_min = 50 }`), "r.hcl")
	assert.ErrorIs(t, err, ingest.ErrBadRegion)
}

func TestValidate_OutOfEnum(t *testing.T) {
	c := config.Default()
	c.Routing.Gap = builder.GapPolicy(9)
	assert.ErrorIs(t, c.Validate(), config.ErrUnknownPolicy)

	c = config.Default()
	c.Routing.Queue = distance.QueueOrder(9)
	assert.ErrorIs(t, c.Validate(), config.ErrUnknownPolicy)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`store { capacity = 10 }`), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Capacity)

	_, err = config.Load(filepath.Join(dir, "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestOptions ASSERTS the option helpers carry the values into the packages.
func TestOptions(t *testing.T) {
	c := config.Default()
	c.Capacity = 2
	c.Routing.Unreachable = 10
	c.Routing.CaptureRadius = 0

	s := core.NewStore(c.StoreOptions()...)
	assert.Equal(t, 2, s.Cap())

	b, err := builder.New(s, c.BuilderOptions(discard())...)
	require.NoError(t, err)
	assert.Equal(t, builder.GapLink, b.GapPolicy())

	a, _ := s.Create(1, 0, 0)
	bb, _ := s.Create(2, 30, 0)
	_, _ = s.AddEdge(a, bb)
	require.NoError(t, s.MarkStation(a, false))

	res, err := distance.Label(s, c.LabelOptions(discard())...)
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Cutoff)
	assert.Equal(t, 1, res.Unreachable, "30 m is beyond a 10 m cutoff")

	assert.Len(t, c.TextOptions(), 3)
	assert.Len(t, c.IngestOptions(discard()), 3)
}
