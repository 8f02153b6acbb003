// Package session owns the active Identity. It is the only writer of the
// persisted credential; every other component reads through Current or Token.
package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// stateFileName is the fixed name of the durable storage entry. Its presence
// is the sole signal of "logged in" across process restarts.
const stateFileName = "session.json"

// AuthAPI is the slice of the gateway client the store delegates to.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*model.Identity, error)
	Register(ctx context.Context, name, email, password string) (*model.Identity, error)
}

// Store holds the current authenticated identity, persisted across runs.
type Store struct {
	mu       sync.RWMutex
	identity *model.Identity
	loading  bool

	dir  string
	auth AuthAPI
}

// New creates a store persisting under dir. The store reports loading until
// Restore has run.
func New(dir string, auth AuthAPI) *Store {
	return &Store{dir: dir, auth: auth, loading: true}
}

// SetAuth late-binds the gateway client. The client needs the store as its
// token source, so one of the two has to be wired after construction.
func (s *Store) SetAuth(auth AuthAPI) {
	s.auth = auth
}

// Restore runs once at startup: it reads the persisted identity, if any, and
// seeds in-memory state. Absent or malformed storage leaves the session
// unauthenticated; the content is not validated beyond parsing.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.loading = false }()

	data, err := os.ReadFile(s.path())
	if err != nil {
		return
	}
	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return
	}
	s.identity = &identity
}

// Loading reports whether the initial restore is still pending. No other
// operation toggles this flag.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Current returns a copy of the active identity, or nil when unauthenticated.
func (s *Store) Current() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return ""
	}
	return s.identity.Token
}

// Login authenticates against the backend and, on success, persists and sets
// the returned identity. The store does not retry on failure.
func (s *Store) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	identity, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.set(identity)
	return identity, nil
}

// Register creates a new account and adopts its identity like Login does.
func (s *Store) Register(ctx context.Context, name, email, password string) (*model.Identity, error) {
	identity, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	s.set(identity)
	return identity, nil
}

// Logout clears persisted and in-memory state unconditionally. It cannot
// fail: a missing storage entry is already the desired outcome.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	os.Remove(s.path())
	s.identity = nil
}

func (s *Store) set(identity *model.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Persist first so a crash between the two writes leaves storage and the
	// next restore consistent with what the user last saw succeed.
	if data, err := json.Marshal(identity); err == nil {
		if err := os.MkdirAll(s.dir, 0o700); err == nil {
			os.WriteFile(s.path(), data, 0o600)
		}
	}
	copied := *identity
	s.identity = &copied
}

func (s *Store) path() string {
	return filepath.Join(s.dir, stateFileName)
}
