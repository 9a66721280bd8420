// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Handles() returns handles sorted by external id ascending.
//
// AI-Hints (file):
//   - Lookup never fails with an error; absent ids are a normal outcome the
//     caller decides how to treat.
package core

import (
	"fmt"
	"sort"
)

// Create appends a new node with the given external id and coordinates.
//
// Implementation:
//   - Stage 1: Reject a full store (ErrCapacityExceeded).
//   - Stage 2: Reject an id that is already indexed (ErrDuplicateID).
//   - Stage 3: Append to the arena and index id→handle.
//
// Returns:
//   - Handle: the new node's handle; NoHandle on error.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (s *Store) Create(id int64, x, y float64) (Handle, error) {
	if len(s.nodes) >= s.capacity {
		return NoHandle, fmt.Errorf("%w: id %d, capacity %d", ErrCapacityExceeded, id, s.capacity)
	}
	if _, exists := s.index[id]; exists {
		return NoHandle, fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}

	h := Handle(len(s.nodes))
	s.nodes = append(s.nodes, Node{ID: id, X: x, Y: y})
	s.index[id] = h

	return h, nil
}

// Lookup resolves an external id to its handle.
// Absent ids return (NoHandle, false).
// Complexity: O(1).
func (s *Store) Lookup(id int64) (Handle, bool) {
	h, ok := s.index[id]
	if !ok {
		return NoHandle, false
	}

	return h, true
}

// MarkStation flags the node as a station. A node that is marked by any
// operational source stays operational: Proposed is only kept when every
// marking was proposed.
//
// Complexity: O(1).
func (s *Store) MarkStation(h Handle, proposed bool) error {
	if !s.Valid(h) {
		return fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	n := &s.nodes[h]
	if !n.Station {
		n.Station = true
		n.Proposed = proposed
		return nil
	}
	n.Proposed = n.Proposed && proposed

	return nil
}

// Handles returns every handle ordered by ascending external id.
// Complexity: O(V·log V) time, O(V) space.
func (s *Store) Handles() []Handle {
	out := make([]Handle, len(s.nodes))
	for i := range out {
		out[i] = Handle(i)
	}
	sort.Slice(out, func(i, j int) bool {
		return s.nodes[out[i]].ID < s.nodes[out[j]].ID
	})

	return out
}
