// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Neighbors.
// Determinism:
//   - Node.Edges keeps insertion order; nothing here reorders it.
// AI-HINT (file):
//   - AddEdge is idempotent in both directions: (a,b) and (b,a) name the same edge.
//   - Self-loops are dropped (added=false, err=nil).

package core

import "fmt"

// AddEdge links a and b with a mirrored pair of half-edges.
//
// Steps:
//  1. Validate both handles (ErrBadHandle).
//  2. a == b ⇒ no-op (a way repeating a node produces no loop).
//  3. If a→b already exists ⇒ no-op; by symmetry b→a exists too.
//  4. Append a→b and b→a, increment the undirected edge counter.
//
// Returns:
//   - bool: true iff a new undirected edge was stored.
//
// Complexity: O(deg(a)) for the duplicate scan; node degrees in street
// networks are small, so a linear scan beats a per-node map.
func (s *Store) AddEdge(a, b Handle) (bool, error) {
	if !s.Valid(a) {
		return false, fmt.Errorf("%w: %d", ErrBadHandle, a)
	}
	if !s.Valid(b) {
		return false, fmt.Errorf("%w: %d", ErrBadHandle, b)
	}
	if a == b {
		return false, nil
	}
	if s.hasEdge(a, b) {
		return false, nil
	}

	s.nodes[a].Edges = append(s.nodes[a].Edges, Edge{To: b})
	s.nodes[b].Edges = append(s.nodes[b].Edges, Edge{To: a})
	s.edgeCount++

	return true, nil
}

// HasEdge reports whether a→b exists. Invalid handles report false.
// Complexity: O(deg(a)).
func (s *Store) HasEdge(a, b Handle) bool {
	if !s.Valid(a) || !s.Valid(b) {
		return false
	}

	return s.hasEdge(a, b)
}

// Neighbors returns the target handles of h's edges in insertion order.
// Complexity: O(deg(h)).
func (s *Store) Neighbors(h Handle) ([]Handle, error) {
	if !s.Valid(h) {
		return nil, fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	edges := s.nodes[h].Edges
	out := make([]Handle, len(edges))
	for i := range edges {
		out[i] = edges[i].To
	}

	return out, nil
}

func (s *Store) hasEdge(a, b Handle) bool {
	for i := range s.nodes[a].Edges {
		if s.nodes[a].Edges[i].To == b {
			return true
		}
	}

	return false
}
