package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/log"
)

// ErrInvalid indicates a configuration that parses but cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Store kinds.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSqlite = "sqlite"
)

// Config is the resolved program configuration.
type Config struct {
	Grid       Grid
	Edges      builder.Params
	Endpoints  Endpoints
	Generation Generation
	Store      Store
	Render     Render
	LogLevel   log.Level
}

// Grid is the lattice geometry.
type Grid struct {
	Width, Height, Step int
}

// Endpoints are the requested start and end nodes. Members of the lattice
// replace the builder defaults; anything else is ignored.
type Endpoints struct {
	Start, End core.Node
}

// Generation tunes the builder.
type Generation struct {
	// Seed fixes the random source; nil means time-seeded.
	Seed        *int64
	MaxAttempts int
	RepairMin   int64
	RepairMax   int64
}

// Store selects the persistence backend.
type Store struct {
	Kind   string
	Path   string
	Addr   string
	Prefix string
	TTL    time.Duration
}

// Render controls frame pacing.
type Render struct {
	Tick time.Duration
}

// Default returns the 64×64 step-8 setup with start (0,0) and end (64,64).
func Default() *Config {
	return &Config{
		Grid:      Grid{Width: 64, Height: 64, Step: 8},
		Edges:     builder.DefaultParams(),
		Endpoints: Endpoints{Start: core.Pt(0, 0), End: core.Pt(64, 64)},
		Generation: Generation{
			MaxAttempts: 10,
			RepairMin:   1,
			RepairMax:   10,
		},
		Store:    Store{Kind: StoreMemory, Prefix: "gridpath:"},
		Render:   Render{Tick: 50 * time.Millisecond},
		LogLevel: log.LevelInfo,
	}
}

// Validate checks cross-field constraints that option constructors would
// otherwise turn into panics.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Step <= 0:
		return fmt.Errorf("%w: grid.step=%d must be > 0", ErrInvalid, c.Grid.Step)
	case c.Grid.Width < 0 || c.Grid.Height < 0:
		return fmt.Errorf("%w: grid %dx%d must not be negative", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Generation.MaxAttempts < 1:
		return fmt.Errorf("%w: generation.max_attempts=%d must be ≥ 1", ErrInvalid, c.Generation.MaxAttempts)
	case c.Generation.RepairMin < 1 || c.Generation.RepairMin > c.Generation.RepairMax:
		return fmt.Errorf("%w: generation.repair_min=%d, repair_max=%d", ErrInvalid,
			c.Generation.RepairMin, c.Generation.RepairMax)
	case c.Render.Tick < 0:
		return fmt.Errorf("%w: render.tick_ms must not be negative", ErrInvalid)
	case c.Store.TTL < 0:
		return fmt.Errorf("%w: store.ttl_seconds must not be negative", ErrInvalid)
	}
	if err := c.Edges.Validate(); err != nil {
		return fmt.Errorf("%w: edges: %v", ErrInvalid, err)
	}
	switch c.Store.Kind {
	case StoreMemory:
	case StoreFile, StoreSqlite:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: store.path is required for kind %q", ErrInvalid, c.Store.Kind)
		}
	case StoreRedis:
		if c.Store.Addr == "" {
			return fmt.Errorf("%w: store.addr is required for kind %q", ErrInvalid, c.Store.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown store.kind %q", ErrInvalid, c.Store.Kind)
	}

	return nil
}

// BuilderOptions translates Generation into builder options.
func (c *Config) BuilderOptions(logger log.Logger) []builder.Option {
	opts := []builder.Option{
		builder.WithMaxAttempts(c.Generation.MaxAttempts),
		builder.WithRepairWeights(c.Generation.RepairMin, c.Generation.RepairMax),
	}
	if c.Generation.Seed != nil {
		opts = append(opts, builder.WithSeed(*c.Generation.Seed))
	}
	if logger != nil {
		opts = append(opts, builder.WithLogger(logger))
	}

	return opts
}
