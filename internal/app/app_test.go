package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationreach/builder"
	"github.com/katalvlaran/stationreach/config"
	"github.com/katalvlaran/stationreach/distance"
	"github.com/katalvlaran/stationreach/ingest"
	"github.com/katalvlaran/stationreach/internal/app"
	"github.com/katalvlaran/stationreach/sqlitesink"
)

// extract is a 3-node footway inside a small equatorial box with an
// entrance at its west end, plus a disconnected pair far east.
const extract = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="0.001" lon="0.001"><tag k="railway" v="subway_entrance"/></node>
  <node id="2" lat="0.001" lon="0.002"/>
  <node id="3" lat="0.001" lon="0.003"/>
  <node id="8" lat="0.001" lon="0.009"/>
  <node id="9" lat="0.002" lon="0.009"/>
  <node id="99" lat="5" lon="5"/>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="11">
    <nd ref="8"/><nd ref="9"/><nd ref="99"/>
    <tag k="highway" v="service"/>
  </way>
</osm>
`

var box = ingest.Region{LonMin: 0, LonMax: 0.01, LatMin: 0, LatMax: 0.01}

func writeExtract(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.osm")
	require.NoError(t, os.WriteFile(path, []byte(extract), 0o600))

	return path
}

func ptr[T any](v T) *T { return &v }

func TestNew_Overrides(t *testing.T) {
	var logs bytes.Buffer
	a, err := app.New(&bytes.Buffer{}, &logs, app.Config{
		Region:        &box,
		AllowProposed: ptr(true),
		CaptureRadius: ptr(0.0),
		Unreachable:   ptr(500.0),
		GapPolicy:     ptr("truncate"),
		Queue:         ptr("lifo"),
		LogLevel:      "debug",
	})
	require.NoError(t, err)

	cfg := a.Settings()
	assert.Equal(t, ingest.MeanRadius, cfg.Region.EarthRadius, "radius kept from defaults")
	assert.Equal(t, 0.01, cfg.Region.LonMax)
	assert.True(t, cfg.Routing.AllowProposed)
	assert.Equal(t, 500.0, cfg.Routing.Unreachable)
	assert.Equal(t, builder.GapTruncate, cfg.Routing.Gap)
	assert.Equal(t, distance.LIFO, cfg.Routing.Queue)
	assert.NotEmpty(t, a.RunID())
	assert.Contains(t, logs.String(), "run_id="+a.RunID())
}

func TestNew_Errors(t *testing.T) {
	_, err := app.New(nil, &bytes.Buffer{}, app.Config{GapPolicy: ptr("bridge")})
	assert.ErrorIs(t, err, config.ErrUnknownPolicy)

	_, err = app.New(nil, &bytes.Buffer{}, app.Config{Unreachable: ptr(50.0)})
	assert.ErrorIs(t, err, config.ErrBadRouting, "default 80 m radius exceeds a 50 m cutoff")

	_, err = app.New(nil, &bytes.Buffer{}, app.Config{ConfigPath: filepath.Join(t.TempDir(), "none.hcl")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Pipeline(t *testing.T) {
	var out, logs bytes.Buffer
	a, err := app.New(&out, &logs, app.Config{
		Input:         writeExtract(t),
		Region:        &box,
		CaptureRadius: ptr(0.0),
	})
	require.NoError(t, err)

	sum, err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, sum.Ingest.Nodes)
	assert.Equal(t, 1, sum.Ingest.OutOfBounds)
	assert.Equal(t, 1, sum.Build.Unresolved)
	assert.Equal(t, 1, sum.Label.Sources)
	assert.Equal(t, 3, sum.Label.Reachable)
	assert.Equal(t, 2, sum.Label.Unreachable)
	assert.Equal(t, 2, sum.Dump.Components)
	assert.Equal(t, 3, sum.Dump.Edges)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "#STATION 111 111 0 # 1\n"), text)
	assert.Contains(t, text, "# new net\n\n")
	assert.Contains(t, text, " 1000 # 9\n")
	assert.Contains(t, logs.String(), "5 nodes 3 edges")
}

func TestRun_FilesAndSQLite(t *testing.T) {
	dir := t.TempDir()
	hcl := filepath.Join(dir, "run.hcl")
	require.NoError(t, os.WriteFile(hcl, []byte(`
region {
  lon_min = 0
  lon_max = 0.01
  lat_min = 0
  lat_max = 0.01
}
output {
  precision = 1
}
`), 0o600))

	opts := app.Config{
		Input:      writeExtract(t),
		ConfigPath: hcl,
		Output:     filepath.Join(dir, "reach.gp"),
		SQLitePath: filepath.Join(dir, "reach.db"),
	}
	a, err := app.New(&bytes.Buffer{}, &bytes.Buffer{}, opts)
	require.NoError(t, err)
	sum, err := a.Run(context.Background())
	require.NoError(t, err)

	text, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Contains(t, string(text), "#STATION 111.1 111.1 0.0 # 1\n")

	db, err := sqlitesink.Connect(context.Background(), opts.SQLitePath)
	require.NoError(t, err)
	defer db.Close()
	run, err := db.Run(context.Background(), a.RunID())
	require.NoError(t, err)
	assert.Equal(t, sum.Dump.Edges, run.Edges)
	assert.Equal(t, opts.Input, run.Source)
}

func TestRun_Errors(t *testing.T) {
	a, err := app.New(&bytes.Buffer{}, &bytes.Buffer{}, app.Config{})
	require.NoError(t, err)
	_, err = a.Run(context.Background())
	assert.ErrorIs(t, err, app.ErrNoInput)

	a, err = app.New(&bytes.Buffer{}, &bytes.Buffer{}, app.Config{Input: "extract.shp"})
	require.NoError(t, err)
	_, err = a.Run(context.Background())
	assert.ErrorIs(t, err, ingest.ErrUnknownFormat)
}

type fixedFaces [][3]int

func (f fixedFaces) Triangulate(_ context.Context, pts []orb.Point) ([][3]int, error) {
	return f, nil
}

func TestMesh(t *testing.T) {
	var logs bytes.Buffer
	a, err := app.New(nil, &logs, app.Config{})
	require.NoError(t, err)

	in := strings.NewReader("#STATION 0 0 0 # 1\n0 0 0 # 1\n10 0 10 # 2\n\n10 0 10 # 2\n0 10 900 # 3\n\n")
	var out bytes.Buffer
	require.NoError(t, a.Mesh(context.Background(), in, &out, fixedFaces{{0, 1, 3}}))

	assert.Equal(t, "0 0\n10 0\n0 10\n0 0\n\n", out.String())
	assert.Contains(t, logs.String(), "faces=1")
	assert.Contains(t, logs.String(), "good=3")
	assert.Contains(t, logs.String(), "bad=1")
}
