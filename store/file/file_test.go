package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/store"
	"github.com/katalvlaran/gridpath/store/storetest"
)

func TestFileStore_Conformance(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "graphs"))
	require.NoError(t, err)
	storetest.Run(t, s)
}

func TestFileStore_Layout(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "demo", storetest.Sample()))
	_, err = os.Stat(filepath.Join(dir, "demo.json"))
	assert.NoError(t, err)

	// Foreign files are not keys.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))
	keys, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"demo"}, keys)
}

func TestFileStore_Malformed(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"nodes":[[0,0]],"edges":[[0,0,5,5,1]]}`), 0o644))

	_, err = s.Load(context.Background(), "bad")
	assert.ErrorIs(t, err, store.ErrMalformed)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestFileStore_CanceledContext(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, "k", storetest.Sample()), context.Canceled)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
