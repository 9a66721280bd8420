package mesh

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/paulmach/orb"
)

// Sentinel errors for malformed triangulator output.
var (
	ErrBadLength = errors.New("mesh: bad result (length)")
	ErrBadFace   = errors.New("mesh: bad result (face)")
)

// Triangulator computes a triangulation of pts. Each face holds three
// indexes into pts.
type Triangulator interface {
	Triangulate(ctx context.Context, pts []orb.Point) ([][3]int, error)
}

// DefaultQhull is the qhull invocation that prints triangulated Delaunay
// faces as vertex-index triples.
var DefaultQhull = Qhull{Command: "qdelaunay", Args: []string{"Qt", "i"}}

// Qhull runs an external program speaking the qhull text protocol.
type Qhull struct {
	Command string
	Args    []string
}

// Triangulate pipes pts to the program and parses the faces it prints.
// Fewer than three points yield no faces without starting the program.
func (q Qhull) Triangulate(ctx context.Context, pts []orb.Point) ([][3]int, error) {
	if len(pts) < 3 {
		return nil, nil
	}

	cmd := exec.CommandContext(ctx, q.Command, q.Args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", q.Command, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", q.Command, err)
	}
	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", q.Command, err)
	}

	// Feed stdin concurrently so a program that streams output early
	// cannot deadlock against a full pipe.
	werr := make(chan error, 1)
	go func() {
		werr <- writePoints(stdin, pts)
	}()

	faces, perr := readFaces(stdout, len(pts))
	if perr != nil {
		// Drain so Wait does not block on a full stdout.
		_, _ = io.Copy(io.Discard, stdout)
	}
	wrErr := <-werr
	waitErr := cmd.Wait()

	switch {
	case perr != nil:
		return nil, perr
	case waitErr != nil:
		return nil, fmt.Errorf("mesh: %s: %w: %s", q.Command, waitErr, bytes.TrimSpace(stderr.Bytes()))
	case wrErr != nil:
		return nil, fmt.Errorf("mesh: write points: %w", wrErr)
	}

	return faces, nil
}

// writePoints sends "2\n<n>\n" and one "x y" line per point, then closes w.
func writePoints(w io.WriteCloser, pts []orb.Point) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	buf = append(buf, "2\n"...)
	buf = strconv.AppendInt(buf, int64(len(pts)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		w.Close()
		return err
	}
	for _, p := range pts {
		buf = strconv.AppendFloat(buf[:0], p.X(), 'f', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y(), 'f', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			w.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

// readFaces parses "<f>" followed by f lines of "a b c". Indexes must be
// below n.
func readFaces(r io.Reader, n int) ([][3]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(sc.Text())
		return v, err == nil
	}

	count, ok := next()
	if !ok || count < 0 {
		return nil, ErrBadLength
	}
	faces := make([][3]int, 0, count)
	for i := 0; i < count; i++ {
		var f [3]int
		for j := range f {
			v, ok := next()
			if !ok || v < 0 || v >= n {
				return nil, fmt.Errorf("%w: face %d", ErrBadFace, i)
			}
			f[j] = v
		}
		faces = append(faces, f)
	}

	return faces, nil
}

// Triangulate fills m.Faces using t.
func (m *Mesh) Triangulate(ctx context.Context, t Triangulator) error {
	faces, err := t.Triangulate(ctx, m.Coordinates())
	if err != nil {
		return err
	}
	m.Faces = faces

	return nil
}
