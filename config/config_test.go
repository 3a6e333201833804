package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/log"
	"github.com/katalvlaran/gridpath/store/storetest"
)

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(""), "empty.hcl", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, builder.DefaultParams(), cfg.Edges)
	assert.Equal(t, core.Pt(64, 64), cfg.Endpoints.End)
	assert.Nil(t, cfg.Generation.Seed)
}

func TestParse_Full(t *testing.T) {
	src := `
grid {
  width  = 32
  height = 16
  step   = 4
}
edges {
  min_connections = 1
  max_connections = 3
  min_weight      = 2
  max_weight      = 20
  distance_factor = 1.8
}
endpoints {
  start = [4, 4]
  end   = [32, 16]
}
generation {
  seed         = env.GRIDPATH_SEED
  max_attempts = 3
  repair_min   = 5
  repair_max   = 6
}
store {
  kind        = "sqlite"
  path        = "${env.HOME}/graphs.db"
  ttl_seconds = 60
}
render {
  tick_ms = 0
}
log {
  level = "debug"
}
`
	env := map[string]string{"GRIDPATH_SEED": "42", "HOME": "/tmp/me"}
	cfg, err := config.Parse([]byte(src), "full.hcl", env)
	require.NoError(t, err)

	assert.Equal(t, config.Grid{Width: 32, Height: 16, Step: 4}, cfg.Grid)
	assert.Equal(t, builder.Params{
		MinConnections: 1, MaxConnections: 3, MinWeight: 2, MaxWeight: 20, DistanceFactor: 1.8,
	}, cfg.Edges)
	assert.Equal(t, config.Endpoints{Start: core.Pt(4, 4), End: core.Pt(32, 16)}, cfg.Endpoints)
	require.NotNil(t, cfg.Generation.Seed)
	assert.Equal(t, int64(42), *cfg.Generation.Seed)
	assert.Equal(t, 3, cfg.Generation.MaxAttempts)
	assert.Equal(t, config.StoreSqlite, cfg.Store.Kind)
	assert.Equal(t, "/tmp/me/graphs.db", cfg.Store.Path)
	assert.Equal(t, time.Minute, cfg.Store.TTL)
	assert.Equal(t, time.Duration(0), cfg.Render.Tick)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel)
	assert.Len(t, cfg.BuilderOptions(log.NoOpLogger{}), 4)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":          `grid {`,
		"unknown block":   `mesh { }`,
		"unknown attr":    `grid { depth = 3 }`,
		"type mismatch":   `grid { step = "wide" }`,
		"missing env":     `generation { seed = env.NOPE }`,
		"bad step":        `grid { step = 0 }`,
		"bad edges":       `edges { min_connections = 5 }`,
		"bad endpoint":    `endpoints { start = [1, 2, 3] }`,
		"bad store":       `store { kind = "tape" }`,
		"file needs path": `store { kind = "file" }`,
		"redis addr":      `store { kind = "redis" }`,
		"bad level":       `log { level = "loud" }`,
		"bad repair":      `generation { repair_min = 0 }`,
		"negative tick":   `render { tick_ms = -1 }`,
		"negative ttl":    `store { ttl_seconds = -5 }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(src), name+".hcl", map[string]string{})
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte(`grid { step = -1 }`), "x.hcl", map[string]string{})
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg := config.Default()
	cfg.Store.TTL = -time.Second
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`render { tick_ms = 5 }`), 0o644))

	cfg, err := config.Load(path, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, cfg.Render.Tick)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.hcl"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	for _, s := range []config.Store{
		{Kind: config.StoreMemory},
		{Kind: config.StoreFile, Path: filepath.Join(t.TempDir(), "graphs")},
		{Kind: config.StoreSqlite, Path: filepath.Join(t.TempDir(), "graphs.db")},
		{Kind: config.StoreRedis, Addr: mr.Addr(), Prefix: "cfg:"},
	} {
		t.Run(s.Kind, func(t *testing.T) {
			st, closeFn, err := config.OpenStore(s)
			require.NoError(t, err)
			defer closeFn()

			rec := storetest.Sample()
			require.NoError(t, st.Save(ctx, "k", rec))
			got, err := st.Load(ctx, "k")
			require.NoError(t, err)
			storetest.RequireSameRecord(t, rec, got)
		})
	}

	_, closeFn, err := config.OpenStore(config.Store{Kind: "tape"})
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.NotNil(t, closeFn)
}
