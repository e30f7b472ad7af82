package draft

import (
	"fmt"
	"strings"
)

type BackendType string

const (
	BackendMemory BackendType = "memory"
	BackendRedis  BackendType = "redis"
	BackendSQLite BackendType = "sqlite"
)

// NewStore picks a backend from the DSN: redis:// URLs go to redis, an empty
// DSN stays in memory, anything else is a sqlite path.
func NewStore(dsn, slot string) (Store, error) {
	backend := BackendSQLite
	switch {
	case dsn == "":
		backend = BackendMemory
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		backend = BackendRedis
	}

	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(dsn, slot)
	case BackendSQLite:
		return NewSQLiteStore(dsn, slot)
	default:
		return nil, fmt.Errorf("unable to determine draft backend from DSN: %s", dsn)
	}
}
