// Package stationreach computes how far every pedestrian node of a city is
// from the nearest metro station, walking along the street network.
//
// 🚀 What does it do?
//
//	One batch pass over an OpenStreetMap extract:
//		• ingest/    decode nodes & ways (XML, bzip2 XML, PBF), clip to a box, project to meters
//		• builder/   turn routable ways into deduplicated undirected edges, mark stations
//		• distance/  label each node with its network distance to the closest station
//		• dump/      write the labeled network, one connected component at a time
//
// ✨ Around the pipeline:
//
//   - core/       – arena node store with stable int32 handles
//   - config/     – HCL run configuration with validated defaults
//   - mesh/       – read a dump back, triangulate it, classify distance bands
//   - sqlitesink/ – export a dump run into SQLite
//   - ctxlog/     – slog logger carried through context.Context
//   - cmd/stationreach – the command-line driver
//
// Quick ASCII example (S = station entrance, distances in meters):
//
//	S───•───────•
//	0  100     300
//
// The unreachable sentinel (1000 m by default) doubles as the walking
// cutoff: nodes farther than that from every station keep the sentinel.
//
//	go install github.com/katalvlaran/stationreach/cmd/stationreach@latest
package stationreach
