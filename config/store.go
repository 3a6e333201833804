package config

import (
	"fmt"

	"github.com/katalvlaran/gridpath/store"
	"github.com/katalvlaran/gridpath/store/file"
	"github.com/katalvlaran/gridpath/store/memory"
	"github.com/katalvlaran/gridpath/store/redis"
	"github.com/katalvlaran/gridpath/store/sqlite"
)

// OpenStore builds the backend selected by s. The returned close function
// releases connections and is never nil.
func OpenStore(s Store) (store.Store, func() error, error) {
	noop := func() error { return nil }

	switch s.Kind {
	case StoreMemory, "":
		return memory.NewMemoryStore(), noop, nil
	case StoreFile:
		fs, err := file.NewFileStore(s.Path)
		if err != nil {
			return nil, noop, err
		}
		return fs, noop, nil
	case StoreRedis:
		rs := redis.NewRedisStore(redis.RedisOptions{
			Addr:   s.Addr,
			Prefix: s.Prefix,
			TTL:    s.TTL,
		})
		return rs, rs.Close, nil
	case StoreSqlite:
		ss, err := sqlite.NewSqliteStore(sqlite.SqliteOptions{Path: s.Path})
		if err != nil {
			return nil, noop, err
		}
		return ss, ss.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: unknown store.kind %q", ErrInvalid, s.Kind)
	}
}
