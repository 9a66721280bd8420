// Package mesh is the consumer side of a distance dump: it reads the text
// stream written by dump.TextSink back into points, edges and station
// markers, triangulates the points through an external Delaunay program, and
// classifies distances into the colour bands used for catchment maps.
//
// The Delaunay step speaks the qhull text protocol:
//
//	→ 2\n<n>\n<x y>\n…      (dimension, point count, one point per line)
//	← <f>\n<a b c>\n…       (face count, one vertex-index triple per line)
//
// Any program that honors it can replace qdelaunay (see Qhull).
//
// Errors:
//
//	ErrBadLength – the face count is missing or malformed
//	ErrBadFace   – a face line is malformed or indexes a missing point
//	ErrBadLine   – a dump line has a coordinate that does not parse
package mesh
