// Package store persists a generated graph together with its start and end
// nodes as one opaque Record.
//
// Backends:
//
//   - store/memory: process-local map, for tests and single runs.
//   - store/file:   one <key>.json file per record in a directory.
//   - store/redis:  Redis strings plus an index set of keys.
//   - store/sqlite: one row per record in a SQLite table.
//
// Every backend stores the JSON form produced by Marshal, so records move
// freely between them. Load reports ErrNotFound for a missing key and
// ErrMalformed for stored bytes that do not decode to a valid Record; the
// two are distinct because the remedies differ (regenerate vs. repair
// storage).
package store
