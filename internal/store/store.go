// Package store persists the projects and messages collections as whole-file
// JSON documents. Every mutation is a read → transform → overwrite cycle
// serialized by a per-file mutex, so concurrent requests in one process
// cannot lose each other's writes. Access from multiple processes is not
// coordinated.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var ErrNotFound = errors.New("record not found")

// jsonFile is one JSON array document on disk. Callers must hold mu across
// a full read-modify-write cycle.
type jsonFile struct {
	path string
	mu   sync.Mutex
}

// load unmarshals the file into v. A missing file leaves v untouched so the
// collection reads as empty.
func (f *jsonFile) load(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", f.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", f.path, err)
	}
	return nil
}

// save overwrites the whole file with v, creating the data directory on
// first write. The two-space indentation matches the documents the admin
// panel was written against.
func (f *jsonFile) save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
