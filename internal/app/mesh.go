package app

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/stationreach/ctxlog"
	"github.com/katalvlaran/stationreach/mesh"
)

// Mesh reads a dump stream from in, triangulates its points with t and
// writes the triangle outlines to out.
func (a *App) Mesh(ctx context.Context, in io.Reader, out io.Writer, t mesh.Triangulator) error {
	ctx = ctxlog.WithLogger(ctx, a.logger.With("phase", "mesh"))
	log := ctxlog.FromContext(ctx)

	m, err := mesh.Read(in)
	if err != nil {
		return fmt.Errorf("app: mesh: %w", err)
	}
	log.Info("dump read", "points", len(m.Points), "edges", len(m.Edges), "stations", len(m.Stations))

	if err = m.Triangulate(ctx, t); err != nil {
		return fmt.Errorf("app: mesh: %w", err)
	}

	cutoff := a.cfg.Routing.Unreachable
	h := m.Histogram(cutoff)
	log.Info("triangulated", "faces", len(m.Faces),
		mesh.Good.String(), h[mesh.Good], mesh.Average.String(), h[mesh.Average],
		mesh.Bad.String(), h[mesh.Bad], mesh.Remote.String(), h[mesh.Remote])

	return mesh.WriteTriangles(out, m)
}
