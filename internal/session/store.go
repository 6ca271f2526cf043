// Package session holds the client-side state that must survive across
// submissions: prompt history, theme preference, staged attachments and the
// notification queue. Display code lives elsewhere; everything here is
// plain data.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store persists small JSON documents, one file per logical key, under a
// state directory. Every failure path degrades silently: a Load that goes
// wrong leaves the caller's default in place, a Save that goes wrong is
// dropped. Persistence problems must never surface as user-facing errors.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-user state directory
// (e.g. ~/.config/genai-codeassistant on Linux).
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "genai-codeassistant"), nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads the document for key into v. Returns false when the key is
// missing, unreadable or corrupt; v is untouched in that case.
func (s *Store) Load(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// Save writes v as the whole value for key. Errors are returned for
// logging but callers are expected to carry on regardless.
func (s *Store) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
