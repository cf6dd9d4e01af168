package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultPath returns ~/.vi-snake/scores.json or scores.db for the backend,
// falling back to the working directory when no home is available
func DefaultPath(backend string) string {
	name := "scores.json"
	if backend == BackendSQLite {
		name = "scores.db"
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".vi-snake", name)
	}
	return filepath.Join(home, ".vi-snake", name)
}

// Open returns the named backend at path; an empty path uses DefaultPath
func Open(backend, path string) (KV, error) {
	if path == "" && backend != BackendMemory {
		path = DefaultPath(backend)
	}

	switch backend {
	case BackendFile, "":
		return OpenFileKV(path)
	case BackendSQLite:
		return OpenSQLiteKV(path)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
