package dump_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationreach/core"
	"github.com/katalvlaran/stationreach/dump"
)

func render(t *testing.T, s *core.Store, dopts []dump.Option, topts ...dump.TextOption) string {
	t.Helper()
	var buf bytes.Buffer
	ts := dump.NewTextSink(&buf, topts...)
	_, err := dump.Dump(s, ts, dopts...)
	require.NoError(t, err)
	require.NoError(t, ts.Flush())

	return buf.String()
}

// TestTextSink_Golden ASSERTS the full wire format: markers, two-line edges
// with per-endpoint distance, and the separator only between components.
func TestTextSink_Golden(t *testing.T) {
	want := "" +
		"#STATION 0 0 0 # 1\n" +
		"0 0 0 # 1\n" +
		"100 0 100 # 2\n" +
		"\n" +
		"100 0 100 # 2\n" +
		"300 0 300 # 3\n" +
		"\n" +
		"300 0 300 # 3\n" +
		"600 0 600 # 4\n" +
		"\n" +
		"# new net\n" +
		"\n" +
		"0 50 1000 # 10\n" +
		"10 50 1000 # 11\n" +
		"\n" +
		"#STATION 10 50 1000 # 11\n"

	assert.Equal(t, want, render(t, twoNets(t), nil))
}

func TestTextSink_StationIndicatorAndProposed(t *testing.T) {
	got := render(t, twoNets(t), []dump.Option{dump.WithAllowProposed(true)},
		dump.WithStationIndicator(true))

	assert.Contains(t, got, "0 0 0 S # 1\n100 0 100 # 2\n\n")
	assert.Contains(t, got, "0 50 1000 # 10\n10 50 1000 S # 11\n\n")
	assert.Contains(t, got, "600 0 600 # 4\n\n#STATION 7 7 1000 # 5\n# new net\n\n")
}

func TestTextSink_NoDistanceColumn(t *testing.T) {
	got := render(t, twoNets(t), nil, dump.WithDistance(false))
	assert.Contains(t, got, "#STATION 0 0 # 1\n0 0 # 1\n100 0 # 2\n\n")
}

func TestTextSink_Precision(t *testing.T) {
	s := build(t,
		[]node{{id: 7, x: 12.345, y: 6.789, d: 1.26}, {id: 8, x: 1, y: 2, d: 3}},
		[][2]int64{{7, 8}},
	)
	got := render(t, s, nil, dump.WithPrecision(1))
	assert.Equal(t, "12.3 6.8 1.3 # 7\n1.0 2.0 3.0 # 8\n\n", got)

	assert.Panics(t, func() { dump.WithPrecision(-1) })
	assert.Panics(t, func() { dump.WithPrecision(18) })
}

func TestTextSink_SingleComponentHasNoSeparator(t *testing.T) {
	s := build(t, []node{{id: 1}, {id: 2}}, [][2]int64{{1, 2}})
	got := render(t, s, nil)
	assert.NotContains(t, got, dump.Separator)
	assert.Equal(t, "0 0 0 # 1\n0 0 0 # 2\n\n", got)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextSink_WriteError(t *testing.T) {
	ts := dump.NewTextSink(failWriter{})
	_, err := dump.Dump(twoNets(t), ts)
	require.NoError(t, err, "buffered until flush")
	assert.Error(t, ts.Flush())
}
