// Package artifact persists raw model responses and diagnostic payloads
// to disk so failed generation attempts can be inspected after the run.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes artifacts under a base directory. Filenames are derived
// from the call label plus a timestamp, so repeated attempts never
// overwrite each other.
type Store struct {
	dir string
}

// NewStore creates the base directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the base directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveText writes a raw text artifact and returns its path.
func (s *Store) SaveText(label, text string) (string, error) {
	path := s.pathFor(label, "txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", path, err)
	}
	return path, nil
}

// SaveJSON marshals v with indentation and writes it as a JSON artifact.
func (s *Store) SaveJSON(label string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling artifact %q: %w", label, err)
	}
	path := s.pathFor(label, "json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", path, err)
	}
	return path, nil
}

func (s *Store) pathFor(label, ext string) string {
	name := fmt.Sprintf("%s_ts-%d.%s", sanitize(label), time.Now().UnixNano(), ext)
	return filepath.Join(s.dir, name)
}

// sanitize maps a call label to a safe filename fragment.
func sanitize(label string) string {
	replacer := strings.NewReplacer(":", "_", "/", "_", " ", "_", "\\", "_")
	out := replacer.Replace(label)
	if out == "" {
		out = "artifact"
	}
	return out
}
