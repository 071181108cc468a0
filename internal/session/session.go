// Package session persists the signed-in account's tokens between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the session file inside the application directory.
const FileName = "session.json"

// ErrNoSession is returned by helpers that require a signed-in session.
var ErrNoSession = errors.New("session: not signed in")

// Session is the persisted auth state. User is the server's user object
// stored as a JSON string.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         string `json:"user"`
}

// Valid reports whether both tokens are present.
func (s *Session) Valid() bool {
	return s != nil && s.AccessToken != "" && s.RefreshToken != ""
}

// UserField returns a top-level string field from the stored user object,
// or "" when it is missing or not a string.
func (s *Session) UserField(key string) string {
	if s == nil || s.User == "" {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s.User), &m); err != nil {
		return ""
	}
	v, _ := m[key].(string)
	return v
}

// Store saves and loads a Session.
type Store interface {
	Save(s *Session) error
	Load() (*Session, error)
	Clear() error
}

// FileStore keeps the session in a JSON file with owner-only permissions.
type FileStore struct {
	dir  string
	path string
}

// NewFileStore creates a FileStore under dir. An empty dir uses
// ~/.milele.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".milele")
	}
	return &FileStore{dir: dir, path: filepath.Join(dir, FileName)}
}

// Path returns the session file path.
func (f *FileStore) Path() string { return f.path }

// Save writes the session atomically via a temp file and rename.
func (f *FileStore) Save(s *Session) error {
	if s == nil {
		return errors.New("session: nil session")
	}
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session: write temp file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("session: rename temp file: %w", err)
	}
	return nil
}

// Load reads the session. It returns nil without error when no session is
// stored or the file is unreadable JSON.
func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: read: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil
	}
	return &s, nil
}

// Clear removes the session file. A missing file is not an error.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: remove: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	saved *Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores a copy of s.
func (m *MemoryStore) Save(s *Session) error {
	if s == nil {
		return errors.New("session: nil session")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.saved = &cp
	return nil
}

// Load returns a copy of the stored session, or nil.
func (m *MemoryStore) Load() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return nil, nil
	}
	cp := *m.saved
	return &cp, nil
}

// Clear drops the stored session.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = nil
	return nil
}

// Current loads the session from store and returns ErrNoSession when none
// is signed in.
func Current(store Store) (*Session, error) {
	s, err := store.Load()
	if err != nil {
		return nil, err
	}
	if !s.Valid() {
		return nil, ErrNoSession
	}
	return s, nil
}
