// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and aggregate statistics.
// Policy:
//   - No mutation here except the per-phase scratch resets.
//   - Every exported function documents its complexity.

package core

// Len returns the number of stored nodes.
// Complexity: O(1).
func (s *Store) Len() int { return len(s.nodes) }

// Cap returns the configured node bound.
// Complexity: O(1).
func (s *Store) Cap() int { return s.capacity }

// EdgeCount returns the number of undirected edges, i.e. mirrored pairs.
// Complexity: O(1).
func (s *Store) EdgeCount() int { return s.edgeCount }

// Valid reports whether h addresses a stored node.
// Complexity: O(1).
func (s *Store) Valid(h Handle) bool { return h >= 0 && int(h) < len(s.nodes) }

// Node returns the node addressed by h, or nil if h is not valid.
//
// The returned pointer aliases arena storage. It stays usable until the next
// Create, which may move the arena; do not retain it across Create calls.
//
// Complexity: O(1).
func (s *Store) Node(h Handle) *Node {
	if !s.Valid(h) {
		return nil
	}

	return &s.nodes[h]
}

// ResetDistances sets every node's Distance to value.
// Complexity: O(V).
func (s *Store) ResetDistances(value float64) {
	for i := range s.nodes {
		s.nodes[i].Distance = value
	}
}

// ResetVisited clears the Visited tag of every node and every edge.
// Complexity: O(V+E).
func (s *Store) ResetVisited() {
	var i, j int
	for i = range s.nodes {
		s.nodes[i].Visited = false
		for j = range s.nodes[i].Edges {
			s.nodes[i].Edges[j].Visited = false
		}
	}
}

// Stats is a snapshot of store-wide counts.
type Stats struct {
	Nodes     int // stored nodes
	Edges     int // undirected edges
	Stations  int // nodes flagged Station (proposed included)
	Proposed  int // stations flagged Proposed
	Isolated  int // nodes with no edges
	Capacity  int // configured bound
	HalfEdges int // stored directed half-edges (2·Edges when symmetric)
}

// Stats returns aggregate counts over the store.
// Complexity: O(V).
func (s *Store) Stats() Stats {
	st := Stats{Nodes: len(s.nodes), Edges: s.edgeCount, Capacity: s.capacity}
	var i int
	for i = range s.nodes {
		n := &s.nodes[i]
		if n.Station {
			st.Stations++
			if n.Proposed {
				st.Proposed++
			}
		}
		if len(n.Edges) == 0 {
			st.Isolated++
		}
		st.HalfEdges += len(n.Edges)
	}

	return st
}
