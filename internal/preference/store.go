// Package preference is the durable key/value slot behind user choices such
// as the theme. Stores never fail: when the backing storage is missing or
// broken, reads come back empty and writes are dropped.
package preference

import (
	"context"
	"errors"
	"time"

	"github.com/dgilligan/folio/internal/repository"
)

// Store is the process-wide preference slot.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Repo is the subset of repository.PreferenceRepo a SQLiteStore needs.
type Repo interface {
	Get(ctx context.Context, key string) (*repository.Preference, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// opTimeout bounds a single read or write so a locked database file never
// stalls the UI.
const opTimeout = 2 * time.Second

// SQLiteStore adapts a PreferenceRepo to Store. A nil repo gives an
// unavailable store.
type SQLiteStore struct {
	repo     Repo
	observer Observer
}

// NewSQLiteStore creates a Store backed by repo. Errors are reported to obs
// and otherwise swallowed.
func NewSQLiteStore(repo Repo, obs Observer) *SQLiteStore {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &SQLiteStore{repo: repo, observer: obs}
}

func (s *SQLiteStore) Get(key string) (string, bool) {
	if s == nil || s.repo == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	p, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.observer.OnStoreEvent(StoreEvent{Op: OpGet, Key: key, Err: err})
		}
		return "", false
	}
	s.observer.OnStoreEvent(StoreEvent{Op: OpGet, Key: key, Value: p.Value})
	return p.Value, true
}

func (s *SQLiteStore) Set(key, value string) {
	if s == nil || s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := s.repo.Set(ctx, key, value)
	s.observer.OnStoreEvent(StoreEvent{Op: OpSet, Key: key, Value: value, Err: err})
}

func (s *SQLiteStore) Delete(key string) {
	if s == nil || s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := s.repo.Delete(ctx, key)
	s.observer.OnStoreEvent(StoreEvent{Op: OpDelete, Key: key, Err: err})
}

// MemoryStore keeps preferences in a map for the life of the process.
// Used by tests and by ephemeral runs.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.values[key] = value
}

func (m *MemoryStore) Delete(key string) {
	delete(m.values, key)
}

type unavailableStore struct{}

func (unavailableStore) Get(string) (string, bool) { return "", false }
func (unavailableStore) Set(string, string)        {}
func (unavailableStore) Delete(string)             {}

// Unavailable returns a Store for environments without durable storage.
func Unavailable() Store {
	return unavailableStore{}
}

// UnavailableBecause returns Unavailable and reports cause to obs, so the
// reason storage is missing reaches the log instead of the screen.
func UnavailableBecause(cause error, obs Observer) Store {
	if obs != nil && cause != nil {
		obs.OnStoreEvent(StoreEvent{Op: OpOpen, Err: cause})
	}
	return unavailableStore{}
}
