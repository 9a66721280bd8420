package ingest

import (
	"compress/bzip2"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

// ErrUnknownFormat indicates a file name whose extension Open does not map
// to a decoder.
var ErrUnknownFormat = errors.New("ingest: unknown extract format")

// Format names an extract encoding.
type Format int

const (
	FormatXML    Format = iota // .osm, .xml
	FormatXMLBz2               // .osm.bz2, .xml.bz2
	FormatPBF                  // .pbf, .osm.pbf
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "osm-xml"
	case FormatXMLBz2:
		return "osm-xml+bzip2"
	case FormatPBF:
		return "osm-pbf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// DetectFormat maps a file name to its Format by extension.
func DetectFormat(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".pbf"):
		return FormatPBF, nil
	case strings.HasSuffix(lower, ".osm.bz2"), strings.HasSuffix(lower, ".xml.bz2"):
		return FormatXMLBz2, nil
	case strings.HasSuffix(lower, ".osm"), strings.HasSuffix(lower, ".xml"):
		return FormatXML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// OSMSource adapts a paulmach/osm scanner to Source. Nodes and ways become
// events; every other object (relations, changesets, notes, bounds) is
// skipped and counted.
type OSMSource struct {
	scanner osm.Scanner
	closer  io.Closer
	ev      Event
	skipped int
}

// NewXML decodes an OSM XML stream.
func NewXML(ctx context.Context, r io.Reader) *OSMSource {
	return &OSMSource{scanner: osmxml.New(ctx, r)}
}

// NewPBF decodes an OSM PBF stream with procs decoder goroutines.
func NewPBF(ctx context.Context, r io.Reader, procs int) *OSMSource {
	if procs < 1 {
		procs = 1
	}
	sc := osmpbf.New(ctx, r, procs)
	sc.SkipRelations = true

	return &OSMSource{scanner: sc}
}

// Open opens the extract at path and picks the decoder from its extension.
// Closing the returned source closes the file.
func Open(ctx context.Context, path string, procs int) (*OSMSource, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	var src *OSMSource
	switch format {
	case FormatPBF:
		src = NewPBF(ctx, f, procs)
	case FormatXMLBz2:
		src = NewXML(ctx, bzip2.NewReader(f))
	default:
		src = NewXML(ctx, f)
	}
	src.closer = f

	return src, nil
}

// Scan advances to the next node or way.
func (s *OSMSource) Scan() bool {
	for s.scanner.Scan() {
		switch o := s.scanner.Object().(type) {
		case *osm.Node:
			s.ev = NodeEvent{ID: int64(o.ID), Lat: o.Lat, Lon: o.Lon, Tags: o.Tags.Map()}
			return true
		case *osm.Way:
			refs := make([]int64, len(o.Nodes))
			for i, wn := range o.Nodes {
				refs[i] = int64(wn.ID)
			}
			s.ev = WayEvent{ID: int64(o.ID), Tags: o.Tags.Map(), Refs: refs}
			return true
		default:
			s.skipped++
		}
	}
	s.ev = nil

	return false
}

// Event returns the current event.
func (s *OSMSource) Event() Event { return s.ev }

// Err returns the first decoder error.
func (s *OSMSource) Err() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("ingest: decode: %w", err)
	}

	return nil
}

// Skipped returns the number of objects that were neither nodes nor ways.
func (s *OSMSource) Skipped() int { return s.skipped }

// Close stops the decoder and closes the underlying file, if any.
func (s *OSMSource) Close() error {
	err := s.scanner.Close()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}

	return err
}
