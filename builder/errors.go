// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (method name + offending values).
//   • Generate never panics; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrInvalidConfig indicates malformed generation parameters: non-positive
// step, negative dimensions, MinConnections > MaxConnections, weights below
// 1 or inverted, weights past core.WeightBudget for the node set,
// DistanceFactor ≤ 1. Raised before any node or edge work.
var ErrInvalidConfig = errors.New("builder: invalid configuration")

// ErrGenerationExhausted indicates that no attempt within the retry budget
// produced a graph with a directed start→end path. The caller decides
// whether to retry with different parameters or abort.
var ErrGenerationExhausted = errors.New("builder: generation attempts exhausted")
