// Package store holds the persistent key-value backends behind the user's preferences.
package store

import (
	"context"
	"fmt"
	"strings"
)

// KV is a preferences backend. It satisfies prefs.Store.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

func Backends() []Backend { return []Backend{BackendFile, BackendSQLite, BackendRedis} }

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendFile, nil
	case BackendFile, BackendSQLite, BackendRedis:
		return b, nil
	default:
		return "", fmt.Errorf("unknown prefs backend: %s (expected file|sqlite|redis)", s)
	}
}

type Options struct {
	// Dir is used by the file and sqlite backends. Empty means ConfigDir().
	Dir   string
	Redis RedisOptions
}

// Open returns the backend selected by b.
func Open(ctx context.Context, b Backend, opts Options) (KV, error) {
	if b == BackendRedis {
		return OpenRedis(ctx, opts.Redis)
	}

	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		d, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	switch b {
	case "", BackendFile:
		return &FileKV{Dir: dir}, nil
	case BackendSQLite:
		return OpenSQLite(ctx, dir)
	default:
		return nil, fmt.Errorf("unknown prefs backend: %s", b)
	}
}
