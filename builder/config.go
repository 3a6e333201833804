// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// config.go — internal configuration, deterministic defaults and Params.
//
// Defaults:
//   • maxAttempts      = 10
//   • repairMin/Max    = 1 / 10
//   • rng              = time-seeded, created once per Builder
//   • logger           = log.NoOpLogger

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gridpath/log"
)

const (
	defaultMaxAttempts        = 10
	defaultRepairMin          = int64(1)
	defaultRepairMax          = int64(10)
	defaultMinConnections     = 2
	defaultMaxConnections     = 4
	defaultMinWeight          = int64(1)
	defaultMaxWeight          = int64(10)
	defaultDistanceFactor     = 2.5
	minDistanceFactorExcluded = 1.0
)

// builderConfig aggregates all knobs resolved from Options.
type builderConfig struct {
	rng         *rand.Rand
	maxAttempts int
	repairMin   int64
	repairMax   int64
	logger      log.Logger
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		maxAttempts: defaultMaxAttempts,
		repairMin:   defaultRepairMin,
		repairMax:   defaultRepairMax,
		logger:      log.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(timeSeed()))
	}

	return cfg
}

// Params are the per-call edge synthesis knobs of Generate.
type Params struct {
	// MinConnections and MaxConnections bound the outgoing edges sampled per node.
	MinConnections int
	MaxConnections int
	// MinWeight and MaxWeight bound edge weights (inclusive, MinWeight ≥ 1).
	MinWeight int64
	MaxWeight int64
	// DistanceFactor scales step into the neighbor search radius; must exceed 1.
	DistanceFactor float64
}

// DefaultParams returns {2, 4, 1, 10, 2.5}.
func DefaultParams() Params {
	return Params{
		MinConnections: defaultMinConnections,
		MaxConnections: defaultMaxConnections,
		MinWeight:      defaultMinWeight,
		MaxWeight:      defaultMaxWeight,
		DistanceFactor: defaultDistanceFactor,
	}
}

// Validate reports the first violated constraint wrapped in ErrInvalidConfig.
func (p Params) Validate() error {
	switch {
	case p.MinConnections < 0:
		return fmt.Errorf("%s: MinConnections=%d < 0: %w", methodGenerate, p.MinConnections, ErrInvalidConfig)
	case p.MinConnections > p.MaxConnections:
		return fmt.Errorf("%s: MinConnections=%d > MaxConnections=%d: %w",
			methodGenerate, p.MinConnections, p.MaxConnections, ErrInvalidConfig)
	case p.MinWeight < 1:
		return fmt.Errorf("%s: MinWeight=%d < 1: %w", methodGenerate, p.MinWeight, ErrInvalidConfig)
	case p.MinWeight > p.MaxWeight:
		return fmt.Errorf("%s: MinWeight=%d > MaxWeight=%d: %w",
			methodGenerate, p.MinWeight, p.MaxWeight, ErrInvalidConfig)
	case math.IsNaN(p.DistanceFactor) || math.IsInf(p.DistanceFactor, 0) ||
		p.DistanceFactor <= minDistanceFactorExcluded:
		return fmt.Errorf("%s: DistanceFactor=%g must be finite and > 1: %w",
			methodGenerate, p.DistanceFactor, ErrInvalidConfig)
	}

	return nil
}

// validateGrid checks the lattice dimensions accepted by New.
func validateGrid(width, height, step int) error {
	if step <= 0 {
		return fmt.Errorf("%s: step=%d must be > 0: %w", methodNew, step, ErrInvalidConfig)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%s: width=%d, height=%d must be ≥ 0: %w", methodNew, width, height, ErrInvalidConfig)
	}

	return nil
}
