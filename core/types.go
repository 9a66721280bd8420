// SPDX-License-Identifier: MIT
//
// Package core defines the central Store, Node and Edge types.
//
// This file declares Handle, Node, Edge, Store, StoreOption, the sentinel
// errors, and the NewStore constructor.
//
// Errors:
//
//	ErrCapacityExceeded - the store already holds Cap() nodes.
//	ErrDuplicateID      - a node with the same external id exists.
//	ErrBadHandle        - handle is negative or beyond Len().
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core store operations.
var (
	// ErrCapacityExceeded indicates Create was called on a full store.
	ErrCapacityExceeded = errors.New("core: node capacity exceeded")

	// ErrDuplicateID indicates Create was called with an id that is already stored.
	ErrDuplicateID = errors.New("core: duplicate node id")

	// ErrBadHandle indicates a Handle that does not address a stored node.
	ErrBadHandle = errors.New("core: handle out of range")
)

// DefaultCapacity is the node bound used when WithCapacity is not given.
// It matches the size of a large metropolitan extract.
const DefaultCapacity = 1_000_000

// Handle addresses a node inside its Store. Handles are dense indices
// assigned in creation order and are only meaningful for the Store that
// issued them.
type Handle int32

// NoHandle is the zero-information handle returned alongside errors.
const NoHandle Handle = -1

// Edge is one direction of an undirected connection. It is owned by its
// source node and refers to the target only through a Handle.
type Edge struct {
	// To is the target node.
	To Handle

	// Weight is the planar length of the edge in meters. It is zero until
	// the labeling phase computes it.
	Weight float64

	// Visited is scratch state for the dump traversal.
	Visited bool
}

// Node is a point of the routable graph.
//
// ID, X, Y are immutable after Create. Station and Proposed are set during
// ingestion. Distance and Visited are rewritten by the phase that uses them.
type Node struct {
	// ID is the caller-assigned external identifier (an OSM node id).
	ID int64

	// X, Y are projected planar coordinates in meters.
	X, Y float64

	// Station marks a transit entry/exit point.
	Station bool

	// Proposed marks a station that is not yet operational.
	Proposed bool

	// Distance is the shortest network distance to the nearest source.
	Distance float64

	// Visited is scratch state for the dump traversal.
	Visited bool

	// Edges holds the outgoing half-edges in insertion order.
	Edges []Edge
}

// Degree returns the number of distinct neighbors.
func (n *Node) Degree() int { return len(n.Edges) }

// StoreOption configures a Store before creation.
type StoreOption func(s *Store)

// WithCapacity bounds the number of nodes the Store accepts.
// Panics if n <= 0.
func WithCapacity(n int) StoreOption {
	if n <= 0 {
		panic(fmt.Sprintf("core: WithCapacity(%d): capacity must be positive", n))
	}
	return func(s *Store) { s.capacity = n }
}

// Store is the arena of nodes plus the id→handle index.
//
// nodes grows on demand up to capacity; edgeCount counts undirected edges
// (one per mirrored pair).
type Store struct {
	capacity  int
	nodes     []Node
	index     map[int64]Handle
	edgeCount int
}

// NewStore creates an empty Store.
// Complexity: O(1); the arena is allocated lazily as nodes are created.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	s.index = make(map[int64]Handle)

	return s
}
