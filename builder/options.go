// SPDX-License-Identifier: MIT
// Package: stationreach/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builder methods themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"log/slog"
)

// Option customizes a Builder by mutating its builderConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithGapPolicy selects how unresolved way references split a way.
// Panics on a value outside GapLink/GapSplit/GapTruncate.
func WithGapPolicy(p GapPolicy) Option {
	if !p.valid() {
		panic(fmt.Sprintf("builder: WithGapPolicy(%d)", int(p)))
	}
	return func(c *builderConfig) {
		c.gap = p
	}
}

// WithLogger routes skip/duplicate diagnostics to l at debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.log = l
	}
}
