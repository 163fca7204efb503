/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package memory

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/josephgoksu/fitcoach/types"
)

// Backend names accepted in storage.backend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Open creates the Store selected by cfg. dataDir is used when cfg.Path is empty.
func Open(ctx context.Context, cfg types.StorageConfig, dataDir string) (Store, error) {
	path := cfg.Path
	if path == "" {
		path = dataDir
	}

	switch cfg.Backend {
	case "", BackendSQLite:
		if path == "" {
			return nil, fmt.Errorf("storage path is required for the sqlite backend")
		}
		return NewSQLiteStore(path)
	case BackendFile:
		if path == "" {
			return nil, fmt.Errorf("storage path is required for the file backend")
		}
		return NewFileStore(afero.NewOsFs(), filepath.Join(path, "state"))
	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.KeyPrefix)
	case BackendMemory:
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (use sqlite, file, redis or memory)", cfg.Backend)
	}
}
