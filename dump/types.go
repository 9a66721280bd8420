// Package dump defines the sink contract, options and sentinel errors for
// the component dump.
package dump

import (
	"context"
	"errors"

	"github.com/katalvlaran/stationreach/core"
)

var (
	// ErrNilStore is returned when a nil *core.Store is passed to Dump.
	ErrNilStore = errors.New("dump: store is nil")

	// ErrNilSink is returned when Dump has nowhere to write.
	ErrNilSink = errors.New("dump: sink is nil")
)

// Sink receives the dump stream. Calls arrive in stream order:
//
//	Station        – a station marker, independent of any edge.
//	BeginComponent – a new traversal root; index counts from 0.
//	Edge           – an undirected edge, emitted once, lower id first.
//
// Returning an error aborts the dump with that error.
type Sink interface {
	Station(n *core.Node) error
	BeginComponent(index int) error
	Edge(a, b *core.Node) error
}

// Option configures optional behavior of Dump.
type Option func(*Options)

// Options holds configurable parameters for Dump.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// AllowProposed emits markers for proposed stations too.
	AllowProposed bool
}

// DefaultOptions returns Options with a background context and proposed
// stations suppressed.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dump: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithAllowProposed emits markers for proposed stations as well.
func WithAllowProposed(allow bool) Option {
	return func(o *Options) {
		o.AllowProposed = allow
	}
}

// Result counts what a dump emitted.
type Result struct {
	Components int // traversal roots
	Nodes      int // nodes reached by some component
	Edges      int // edges emitted
	Stations   int // station markers emitted
}
