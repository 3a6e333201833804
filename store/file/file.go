// Package file provides a store.Store backed by one JSON file per record.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/gridpath/store"
)

const ext = ".json"

// FileStore keeps each record in <dir>/<key>.json.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates the directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+ext)
}

// Save writes rec to a temporary file and renames it over <key>.json, so
// readers never observe a partial record.
func (f *FileStore) Save(ctx context.Context, key string, rec store.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := store.ValidateKey(key); err != nil {
		return err
	}
	data, err := store.Marshal(rec)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	if err = os.Rename(tmp.Name(), f.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to commit record %s: %w", key, err)
	}

	return nil
}

// Load reads <key>.json.
func (f *FileStore) Load(ctx context.Context, key string) (store.Record, error) {
	if err := ctx.Err(); err != nil {
		return store.Record{}, err
	}
	if err := store.ValidateKey(key); err != nil {
		return store.Record{}, err
	}

	f.mu.RLock()
	data, err := os.ReadFile(f.path(key))
	f.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store.Record{}, fmt.Errorf("%w: %s", store.ErrNotFound, key)
		}
		return store.Record{}, fmt.Errorf("failed to read record %s: %w", key, err)
	}

	return store.Unmarshal(data)
}

// Delete removes <key>.json if present.
func (f *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := store.ValidateKey(key); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}

	return nil
}

// List returns the keys of every *.json file, ignoring temp files.
func (f *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	entries, err := os.ReadDir(f.dir)
	f.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("failed to list store directory: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ext) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ext))
	}
	sort.Strings(keys)

	return keys, nil
}
