// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seed via WithSeed or WithRand.

package builder

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/log"
)

// Option customizes a Builder before node synthesis.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The Builder becomes the RNG's only user; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxAttempts sets the total number of edge-synthesis attempts made by
// Generate (first attempt included). Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}

// WithRepairWeights sets the inclusive weight range of connectivity-repair
// edges. Panics if min < 1 or min > max.
func WithRepairWeights(min, max int64) Option {
	if min < 1 || min > max {
		panic("builder: WithRepairWeights(min<1 || min>max)")
	}
	return func(c *builderConfig) {
		c.repairMin, c.repairMax = min, max
	}
}

// WithLogger routes generation diagnostics to logger. Panics on nil.
func WithLogger(logger log.Logger) Option {
	if logger == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = logger
	}
}

// timeSeed is the fallback seed when no RNG option is supplied.
func timeSeed() int64 {
	return time.Now().UnixNano()
}
