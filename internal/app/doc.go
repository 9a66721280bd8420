// Package app wires the stationreach pipeline together: it resolves the run
// configuration, builds the logger, and drives the phases
//
//	ingest → label → dump
//
// over one extract, writing the text dump and, optionally, an SQLite export.
// It also hosts the mesh subcommand, which triangulates a dump stream.
package app
