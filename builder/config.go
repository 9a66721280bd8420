// SPDX-License-Identifier: MIT
// Package: stationreach/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • gap = GapLink   (consecutive resolved refs are linked across gaps)
//   • log = discard   (silent unless WithLogger is given)

package builder

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// GapPolicy decides what an unresolved way reference does to the chain of
// resolved references around it.
type GapPolicy int

const (
	// GapLink links consecutive resolved refs even when unresolved refs sat
	// between them in the way.
	GapLink GapPolicy = iota

	// GapSplit starts a new chain after every unresolved ref, so nodes that
	// were not adjacent in the way are never linked.
	GapSplit

	// GapTruncate drops the rest of the way at the first unresolved ref.
	GapTruncate
)

var gapNames = [...]string{
	GapLink:     "link",
	GapSplit:    "split",
	GapTruncate: "truncate",
}

// String returns the configuration name of p.
func (p GapPolicy) String() string {
	if !p.valid() {
		return fmt.Sprintf("GapPolicy(%d)", int(p))
	}

	return gapNames[p]
}

func (p GapPolicy) valid() bool { return p >= GapLink && p <= GapTruncate }

// ParseGapPolicy maps a configuration name ("link", "split", "truncate";
// case-insensitive) to its GapPolicy.
func ParseGapPolicy(s string) (GapPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range gapNames {
		if n == name {
			return GapPolicy(i), nil
		}
	}

	return GapLink, fmt.Errorf("%w: %q", ErrUnknownGapPolicy, s)
}

// builderConfig aggregates all knobs used by Builder.
type builderConfig struct {
	gap GapPolicy
	log *slog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		gap: GapLink,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
