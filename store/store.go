package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors shared by every backend.
var (
	// ErrNotFound indicates that no record is stored under the key.
	ErrNotFound = errors.New("store: record not found")

	// ErrMalformed indicates stored data that does not decode to a valid Record.
	ErrMalformed = errors.New("store: malformed record")

	// ErrInvalidKey indicates an empty key or one containing path separators.
	ErrInvalidKey = errors.New("store: invalid key")
)

// Record is the persisted triple: a graph and its endpoints.
type Record struct {
	Graph *core.Graph
	Start core.Node
	End   core.Node
}

// Store saves and loads Records by key.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores rec under key, replacing any previous record.
	Save(ctx context.Context, key string, rec Record) error
	// Load returns the record stored under key.
	Load(ctx context.Context, key string) (Record, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// List returns all stored keys in ascending order.
	List(ctx context.Context) ([]string, error)
}

// NewKey returns a fresh random key.
func NewKey() string {
	return uuid.NewString()
}

// ValidateKey rejects keys that cannot be used as a file name.
func ValidateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return nil
}
