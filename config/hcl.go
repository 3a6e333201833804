package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/log"
)

// hclFile is the top-level structure of a config file for decoding.
// Pointer fields distinguish "absent" from zero values.
type hclFile struct {
	Grid       *hclGrid       `hcl:"grid,block"`
	Edges      *hclEdges      `hcl:"edges,block"`
	Endpoints  *hclEndpoints  `hcl:"endpoints,block"`
	Generation *hclGeneration `hcl:"generation,block"`
	Store      *hclStore      `hcl:"store,block"`
	Render     *hclRender     `hcl:"render,block"`
	Log        *hclLog        `hcl:"log,block"`
}

type hclGrid struct {
	Width  *int `hcl:"width,optional"`
	Height *int `hcl:"height,optional"`
	Step   *int `hcl:"step,optional"`
}

type hclEdges struct {
	MinConnections *int     `hcl:"min_connections,optional"`
	MaxConnections *int     `hcl:"max_connections,optional"`
	MinWeight      *int64   `hcl:"min_weight,optional"`
	MaxWeight      *int64   `hcl:"max_weight,optional"`
	DistanceFactor *float64 `hcl:"distance_factor,optional"`
}

type hclEndpoints struct {
	Start *[]int `hcl:"start,optional"`
	End   *[]int `hcl:"end,optional"`
}

type hclGeneration struct {
	Seed        *int64 `hcl:"seed,optional"`
	MaxAttempts *int   `hcl:"max_attempts,optional"`
	RepairMin   *int64 `hcl:"repair_min,optional"`
	RepairMax   *int64 `hcl:"repair_max,optional"`
}

type hclStore struct {
	Kind       *string `hcl:"kind,optional"`
	Path       *string `hcl:"path,optional"`
	Addr       *string `hcl:"addr,optional"`
	Prefix     *string `hcl:"prefix,optional"`
	TTLSeconds *int    `hcl:"ttl_seconds,optional"`
}

type hclRender struct {
	TickMS *int `hcl:"tick_ms,optional"`
}

type hclLog struct {
	Level *string `hcl:"level,optional"`
}

// Load parses the HCL file at path over Default and validates the result.
// env feeds the `env` object; nil means the process environment.
func Load(path string, env map[string]string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(src, path, env)
}

// Parse decodes HCL source; filename only labels diagnostics.
func Parse(src []byte, filename string, env map[string]string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	if env == nil {
		env = EnvFromOS()
	}
	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := Default()
	if err := parsed.apply(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}

// EnvFromOS snapshots the process environment.
func EnvFromOS() map[string]string {
	env := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			env[pair[0]] = pair[1]
		}
	}

	return env
}

// evalContext exposes env as the `env` object variable.
func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

// apply overlays every present attribute onto cfg.
func (f *hclFile) apply(cfg *Config) error {
	if g := f.Grid; g != nil {
		setInt(&cfg.Grid.Width, g.Width)
		setInt(&cfg.Grid.Height, g.Height)
		setInt(&cfg.Grid.Step, g.Step)
	}
	if e := f.Edges; e != nil {
		setInt(&cfg.Edges.MinConnections, e.MinConnections)
		setInt(&cfg.Edges.MaxConnections, e.MaxConnections)
		setInt64(&cfg.Edges.MinWeight, e.MinWeight)
		setInt64(&cfg.Edges.MaxWeight, e.MaxWeight)
		if e.DistanceFactor != nil {
			cfg.Edges.DistanceFactor = *e.DistanceFactor
		}
	}
	if ep := f.Endpoints; ep != nil {
		if err := setNode(&cfg.Endpoints.Start, ep.Start, "endpoints.start"); err != nil {
			return err
		}
		if err := setNode(&cfg.Endpoints.End, ep.End, "endpoints.end"); err != nil {
			return err
		}
	}
	if g := f.Generation; g != nil {
		if g.Seed != nil {
			seed := *g.Seed
			cfg.Generation.Seed = &seed
		}
		setInt(&cfg.Generation.MaxAttempts, g.MaxAttempts)
		setInt64(&cfg.Generation.RepairMin, g.RepairMin)
		setInt64(&cfg.Generation.RepairMax, g.RepairMax)
	}
	if s := f.Store; s != nil {
		setString(&cfg.Store.Kind, s.Kind)
		setString(&cfg.Store.Path, s.Path)
		setString(&cfg.Store.Addr, s.Addr)
		setString(&cfg.Store.Prefix, s.Prefix)
		if s.TTLSeconds != nil {
			cfg.Store.TTL = time.Duration(*s.TTLSeconds) * time.Second
		}
	}
	if r := f.Render; r != nil && r.TickMS != nil {
		cfg.Render.Tick = time.Duration(*r.TickMS) * time.Millisecond
	}
	if l := f.Log; l != nil && l.Level != nil {
		lvl, err := log.ParseLevel(*l.Level)
		if err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
		}
		cfg.LogLevel = lvl
	}

	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setInt64(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setNode(dst *core.Node, v *[]int, name string) error {
	if v == nil {
		return nil
	}
	if len(*v) != 2 {
		return fmt.Errorf("%w: %s must be [x, y], got %d values", ErrInvalid, name, len(*v))
	}
	*dst = core.Pt((*v)[0], (*v)[1])

	return nil
}
