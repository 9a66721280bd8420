package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/stationreach/dump"
)

// ErrBadLine indicates a dump line whose coordinates do not parse.
var ErrBadLine = errors.New("mesh: malformed dump line")

// Point is one edge endpoint of the dump with its distance label.
// D is +Inf when the dump was written without distances.
type Point struct {
	X, Y float64
	D    float64
}

// Mesh is a dump read back into memory, plus the faces once triangulated.
type Mesh struct {
	Stations []orb.Point
	Points   []Point
	Edges    [][2]int // indexes into Points
	Faces    [][3]int // indexes into Points
}

// Read parses a dump stream.
//
// Recognized lines:
//
//	#STATION x y …   station marker; only x and y are used
//	(blank)          ends the current edge record
//	x y [d] [S] …    one edge endpoint; two in a row form an edge
//
// Every other line starting with '#' is ignored. Each endpoint line becomes
// its own Point, so a node shared by several edges appears once per edge.
func Read(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	last := -1
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			last = -1
		case strings.HasPrefix(text, dump.StationPrefix+" "):
			p, _, err := parsePoint(strings.TrimPrefix(text, dump.StationPrefix))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrBadLine, line, err)
			}
			m.Stations = append(m.Stations, orb.Point{p.X, p.Y})
		case strings.HasPrefix(text, "#"):
			// separator or comment
		default:
			p, ok, err := parsePoint(text)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrBadLine, line, err)
			}
			if !ok {
				continue
			}
			this := len(m.Points)
			m.Points = append(m.Points, p)
			if last < 0 {
				last = this
				continue
			}
			m.Edges = append(m.Edges, [2]int{last, this})
			last = -1
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read: %w", err)
	}

	return m, nil
}

// parsePoint reads "x y [d]" and stops at the first '#' or non-numeric
// field. ok is false for a line with fewer than two fields.
func parsePoint(s string) (p Point, ok bool, err error) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	f := strings.Fields(s)
	if len(f) < 2 {
		return Point{}, false, nil
	}
	if p.X, err = strconv.ParseFloat(f[0], 64); err != nil {
		return Point{}, false, err
	}
	if p.Y, err = strconv.ParseFloat(f[1], 64); err != nil {
		return Point{}, false, err
	}
	p.D = math.Inf(1)
	if len(f) > 2 {
		if d, derr := strconv.ParseFloat(f[2], 64); derr == nil {
			p.D = d
		}
	}

	return p, true, nil
}

// Coordinates returns the points as orb.Points, in index order.
func (m *Mesh) Coordinates() []orb.Point {
	out := make([]orb.Point, len(m.Points))
	for i, p := range m.Points {
		out[i] = orb.Point{p.X, p.Y}
	}

	return out
}

// Bound returns the extent of the points and stations.
func (m *Mesh) Bound() orb.Bound {
	mp := orb.MultiPoint(m.Coordinates())
	mp = append(mp, m.Stations...)

	return mp.Bound()
}
