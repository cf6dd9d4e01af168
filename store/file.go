package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileKV stores all keys as one JSON object file, rewritten atomically on every Set
type FileKV struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// corruptSuffix is appended to a scores file that failed to decode
const corruptSuffix = ".corrupt"

// OpenFileKV loads path if it exists. A missing file is an empty store.
// A malformed file is moved to path+".corrupt" and the store starts empty,
// so the next Set rewrites path. An unreadable file is an error
func OpenFileKV(path string) (*FileKV, error) {
	f := &FileKV{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		log.Printf("Score file %s is malformed, starting empty: %v", path, err)
		if err := os.Rename(path, path+corruptSuffix); err != nil {
			log.Printf("Keep malformed score file: %v", err)
		}
		f.values = make(map[string]string)
		return f, nil
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	return f, nil
}

func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.values[key]
	f.values[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

func (f *FileKV) Close() error { return nil }

// flush writes the whole map via temp file + rename. Caller holds mu
func (f *FileKV) flush() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode scores")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmpFile, err := os.CreateTemp(dir, ".vi-snake-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return errors.Wrapf(err, "write %s", tmpPath)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "close %s", tmpPath)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "replace %s", f.path)
	}
	return nil
}
