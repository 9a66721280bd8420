// Package core provides the arena-backed node store and adjacency structure
// that every later pipeline phase operates on.
//
// The Store G = (V,E) is a routable pedestrian network:
//
//   - Nodes live in one contiguous slice and are addressed by opaque Handles
//     (indices), never by pointers held across phases.
//   - Each Node carries its external id, projected planar coordinates (meters),
//     station/proposed flags and two per-phase scratch fields: Distance and Visited.
//   - Edges are owned by their source node. AddEdge always stores a mirrored
//     pair (a→b and b→a), so the graph is undirected by construction.
//   - Parallel edges and self-loops are never stored; a repeated AddEdge is a no-op.
//
// Why an arena?
//
//   - O(1) handle→node access with predictable memory use.
//   - The capacity bound is explicit: Create returns ErrCapacityExceeded
//     instead of silently truncating the region.
//   - Handles stay valid while the backing slice grows.
//
// Configuration Options (StoreOption):
//
//	– WithCapacity(n int)
//	    Upper bound on the number of nodes. Defaults to DefaultCapacity.
//
// Core Methods:
//
//	// Node lifecycle
//	Create(id int64, x, y float64) (Handle, error) // O(1) amortized
//	Lookup(id int64) (Handle, bool)                 // O(1)
//	Node(h Handle) *Node                            // O(1)
//	MarkStation(h Handle, proposed bool) error      // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b Handle) (bool, error)              // O(deg(a)+deg(b))
//	HasEdge(a, b Handle) bool                       // O(deg(a))
//
//	// Query
//	Len() int; Cap() int; EdgeCount() int
//	Handles() []Handle                              // O(V·log V), ascending external id
//	Stats() Stats                                   // O(V)
//
//	// Phase scratch
//	ResetDistances(value float64)                   // O(V)
//	ResetVisited()                                  // O(V+E)
//
// Concurrency:
//
//	The pipeline is strictly phased and single-threaded, so Store carries no
//	locks. Callers that share a Store across goroutines must serialize access.
//
// Errors:
//
//	ErrCapacityExceeded – Create on a full store
//	ErrDuplicateID      – Create with an id that is already stored
//	ErrBadHandle        – a Handle that does not address a stored node
package core
