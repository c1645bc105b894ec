// Package checkpoint tracks which generation units have completed, so
// interrupted runs resume where they left off instead of regenerating
// finished pools.
package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Entry records one completed unit.
type Entry struct {
	CompletedAt time.Time `json:"completed_at"`
	Questions   int       `json:"questions"`
}

// File is a JSON-backed checkpoint keyed by unit key, e.g.
// "finance_auditor_lvl3". Writes go through a temp file and rename so a
// crash mid-write never corrupts the checkpoint.
type File struct {
	mu      sync.Mutex
	path    string
	entries map[string]Entry
}

// Open loads the checkpoint at path, starting empty when the file does
// not exist. A corrupt file is an error rather than silently discarded.
func Open(path string) (*File, error) {
	f := &File{path: path, entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading checkpoint %s: %w", path, err)
	}
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f.entries); err != nil {
		return nil, fmt.Errorf("parsing checkpoint %s: %w", path, err)
	}
	return f, nil
}

// Done reports whether the unit key has completed.
func (f *File) Done(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key]
	return ok
}

// MarkDone records a completed unit and persists immediately.
func (f *File) MarkDone(key string, questions int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = Entry{CompletedAt: time.Now().UTC(), Questions: questions}
	return f.flushLocked()
}

// Keys returns all completed unit keys, sorted.
func (f *File) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.entries))
	for k := range f.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the full checkpoint map.
func (f *File) Entries() map[string]Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]Entry, len(f.entries))
	for k, v := range f.entries {
		out[k] = v
	}
	return out
}

// Len returns the number of completed units.
func (f *File) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Reset clears all entries and persists the empty checkpoint.
func (f *File) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = make(map[string]Entry)
	return f.flushLocked()
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating checkpoint dir: %w", err)
	}

	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling checkpoint: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing checkpoint temp file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing checkpoint: %w", err)
	}
	return nil
}
