package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/stationreach/core"
)

// Record vocabulary of the text stream.
const (
	StationPrefix = "#STATION"
	Separator     = "# new net"
	StationMark   = "S"
)

// TextSink writes the line-oriented dump format:
//
//	#STATION <x> <y> [<d>] # <id>     station marker
//	<x> <y> [<d>] [S] # <id>          first endpoint
//	<x> <y> [<d>] [S] # <id>          second endpoint
//	                                  blank line ends the edge
//	# new net                         between components only
//	                                  blank line
//
// Numbers are fixed-point with the configured precision. The sink buffers;
// call Flush when the dump is done.
type TextSink struct {
	w    *bufio.Writer
	prec int
	dist bool
	mark bool
	buf  []byte
}

// TextOption configures a TextSink.
type TextOption func(*TextSink)

// WithPrecision sets the number of fractional digits. Panics outside [0,17].
func WithPrecision(p int) TextOption {
	if p < 0 || p > 17 {
		panic(fmt.Sprintf("dump: WithPrecision(%d)", p))
	}
	return func(t *TextSink) { t.prec = p }
}

// WithDistance toggles the distance column.
func WithDistance(on bool) TextOption {
	return func(t *TextSink) { t.dist = on }
}

// WithStationIndicator toggles the S suffix on edge endpoints that are stations.
func WithStationIndicator(on bool) TextOption {
	return func(t *TextSink) { t.mark = on }
}

// NewTextSink returns a TextSink writing to w. Defaults: precision 0,
// distance column on, station indicator off.
func NewTextSink(w io.Writer, opts ...TextOption) *TextSink {
	t := &TextSink{w: bufio.NewWriter(w), dist: true}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Station implements Sink.
func (t *TextSink) Station(n *core.Node) error {
	b := append(t.buf[:0], StationPrefix...)
	b = append(b, ' ')
	b = t.appendPoint(b, n, false)
	t.buf = b

	_, err := t.w.Write(b)
	return err
}

// BeginComponent implements Sink. The separator precedes every component
// except the first.
func (t *TextSink) BeginComponent(index int) error {
	if index == 0 {
		return nil
	}
	_, err := t.w.WriteString(Separator + "\n\n")
	return err
}

// Edge implements Sink.
func (t *TextSink) Edge(a, b *core.Node) error {
	buf := t.appendPoint(t.buf[:0], a, t.mark)
	buf = t.appendPoint(buf, b, t.mark)
	buf = append(buf, '\n')
	t.buf = buf

	_, err := t.w.Write(buf)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (t *TextSink) Flush() error { return t.w.Flush() }

// appendPoint renders "<x> <y> [<d>] [S] # <id>\n".
func (t *TextSink) appendPoint(b []byte, n *core.Node, mark bool) []byte {
	b = strconv.AppendFloat(b, n.X, 'f', t.prec, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, n.Y, 'f', t.prec, 64)
	if t.dist {
		b = append(b, ' ')
		b = strconv.AppendFloat(b, n.Distance, 'f', t.prec, 64)
	}
	if mark && n.Station {
		b = append(b, ' ')
		b = append(b, StationMark...)
	}
	b = append(b, " # "...)
	b = strconv.AppendInt(b, n.ID, 10)

	return append(b, '\n')
}
