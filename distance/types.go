// Package distance defines the options, result and sentinel errors of the
// multi-source distance labeling pass.
package distance

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/stationreach/core"
)

// Sentinel errors returned by Label and ParseQueueOrder.
var (
	// ErrNilStore indicates that a nil *core.Store was passed to Label.
	ErrNilStore = errors.New("distance: store is nil")

	// ErrBadCutoff indicates an unreachable sentinel that is not positive.
	ErrBadCutoff = errors.New("distance: unreachable sentinel must be positive")

	// ErrBadRadius indicates a capture radius that is negative or not below
	// the unreachable sentinel.
	ErrBadRadius = errors.New("distance: capture radius must be in [0, unreachable)")

	// ErrUnknownQueue indicates a queue-order name ParseQueueOrder does not know.
	ErrUnknownQueue = errors.New("distance: unknown queue order")
)

// Defaults taken from the pedestrian-catchment model: beyond one kilometer a
// station is considered out of walking range, and every node within eighty
// meters of an entrance counts as being at that entrance.
const (
	DefaultUnreachable   = 1000.0
	DefaultCaptureRadius = 80.0
)

// QueueOrder selects the worklist discipline of the relaxation loop. Both
// orders converge to the same distances; they differ in how many times a
// node is revisited.
type QueueOrder int

const (
	// FIFO processes dirty nodes breadth-first (Bellman-Ford style).
	FIFO QueueOrder = iota

	// LIFO processes the most recently improved node first, reproducing the
	// depth-first order of a recursive relaxation.
	LIFO
)

// String returns the configuration name of q.
func (q QueueOrder) String() string {
	switch q {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("QueueOrder(%d)", int(q))
	}
}

// ParseQueueOrder maps "fifo" or "lifo" (case-insensitive) to its QueueOrder.
func ParseQueueOrder(s string) (QueueOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	}

	return FIFO, fmt.Errorf("%w: %q", ErrUnknownQueue, s)
}

// RelaxFunc observes every distance update: h's distance drops from old to
// new. Seeding updates are reported too.
type RelaxFunc func(h core.Handle, old, new float64)

// Options configures Label.
//
//   - Unreachable: sentinel distance and implicit cutoff; must be > 0.
//   - CaptureRadius: nodes within this planar distance of a source are
//     seeded with that straight-line distance; 0 seeds only the sources.
//   - AllowProposed: treat proposed stations as sources.
//   - Queue: worklist discipline.
//   - OnRelax: optional observer of distance updates.
//   - Logger: progress and summary diagnostics.
type Options struct {
	Unreachable   float64
	CaptureRadius float64
	AllowProposed bool
	Queue         QueueOrder
	OnRelax       RelaxFunc
	Logger        *slog.Logger
}

// Option represents a functional option for configuring Label.
type Option func(*Options)

// WithUnreachable sets the sentinel distance. Panics if d <= 0.
func WithUnreachable(d float64) Option {
	if d <= 0 {
		panic(ErrBadCutoff.Error())
	}
	return func(o *Options) {
		o.Unreachable = d
	}
}

// WithCaptureRadius sets the seeding radius. Panics if r < 0.
// A radius not below the sentinel is rejected by Label with ErrBadRadius.
func WithCaptureRadius(r float64) Option {
	if r < 0 {
		panic(ErrBadRadius.Error())
	}
	return func(o *Options) {
		o.CaptureRadius = r
	}
}

// WithAllowProposed makes proposed stations act as sources.
func WithAllowProposed(allow bool) Option {
	return func(o *Options) {
		o.AllowProposed = allow
	}
}

// WithQueue selects the worklist discipline. Panics on an unknown order.
func WithQueue(q QueueOrder) Option {
	if q != FIFO && q != LIFO {
		panic(fmt.Sprintf("distance: WithQueue(%d)", int(q)))
	}
	return func(o *Options) {
		o.Queue = q
	}
}

// WithOnRelax installs an observer of distance updates. A nil fn removes it.
func WithOnRelax(fn RelaxFunc) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// WithLogger routes progress diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("distance: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults:
//
//   - Unreachable:   DefaultUnreachable (1000 m).
//   - CaptureRadius: DefaultCaptureRadius (80 m).
//   - AllowProposed: false.
//   - Queue:         FIFO.
//   - OnRelax:       nil.
//   - Logger:        discards everything.
func DefaultOptions() Options {
	return Options{
		Unreachable:   DefaultUnreachable,
		CaptureRadius: DefaultCaptureRadius,
		Queue:         FIFO,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result summarizes a labeling pass.
type Result struct {
	Sources     int     // stations used as sources
	Seeds       int     // nodes that received a seed distance
	Reachable   int     // nodes with distance below the sentinel
	Unreachable int     // nodes left at the sentinel
	Updates     int     // strict decreases applied, seeding included
	Pops        int     // worklist pops
	Farthest    float64 // largest finite distance assigned
	Cutoff      float64 // the sentinel in effect
}
