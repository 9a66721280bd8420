// Package builder turns classified ways into the deduplicated, symmetric
// adjacency structure held by core.Store.
//
// The package offers the following key components:
//
//   - Builder:       resolves way refs against a core.Store and links them.
//   - Way:           an ordered chain of external node ids plus its
//     classification (Route, Station, Proposed).
//   - GapPolicy:     what an unresolved ref does to the chain around it
//     (GapLink, GapSplit, GapTruncate).
//   - Option:        WithGapPolicy, WithLogger.
//   - Stats:         counters for every recoverable condition.
//
// Guarantees:
//
//   - Idempotent linking: feeding the same way twice adds no edges the
//     second time (core.Store.AddEdge deduplicates in both directions).
//   - Unresolved refs, duplicate edges and self-loops never surface as errors.
//   - A way may mark stations without being routed, and vice versa.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//
// Gap policies:
//
//	refs:      1  2  ?  3  4        (? = fails Lookup)
//	link:      1-2-3-4              (2-3 linked across the gap)
//	split:     1-2   3-4
//	truncate:  1-2
package builder
