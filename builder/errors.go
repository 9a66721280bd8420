// SPDX-License-Identifier: MIT
// Package: stationreach/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the call site, never in the definition.
//   • Recoverable way conditions (unresolved refs, duplicate edges, loops) are
//     counted and logged, never returned.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrNilStore indicates New was called without a node store.
var ErrNilStore = errors.New("builder: nil store")

// ErrUnknownGapPolicy indicates a gap-policy name that ParseGapPolicy does not know.
var ErrUnknownGapPolicy = errors.New("builder: unknown gap policy")
