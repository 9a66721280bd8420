// Package ingest turns a geospatial extract into NodeStore and GraphBuilder
// input.
//
// The package is split into a decoder side and a core side:
//
//   - Events:   NodeEvent and WayEvent, the closed set of variants a decoder
//     produces. Event is sealed; dispatch is a type switch.
//   - Source:   a pull scanner of Events (Scan/Event/Err/Close). OSMSource
//     adapts paulmach/osm's XML and PBF scanners; SliceSource replays a
//     fixed list.
//   - Region:   the bounding box and the equirectangular projection that
//     maps lat/lon to planar meters.
//   - Classifier: tag rules deciding whether a way is routable, whether a
//     node or way marks a station, and whether that station is proposed.
//   - Ingestor: filters nodes by Region, deduplicates ids through
//     Store.Lookup, creates nodes and hands classified ways to the Builder.
//
// Recoverable conditions (out-of-box nodes, repeated node ids, unsupported
// objects) are counted in Stats and logged at debug level. Capacity and
// decoder I/O failures end the run.
package ingest
