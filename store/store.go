// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gogpu/defaults"
	"github.com/gogpu/defaults/asset"
)

// Errors.
var (
	// ErrClosed is returned when adding to a store that has been closed.
	ErrClosed = errors.New("store: closed")

	// ErrEmptyKey is returned when adding a resource without a key.
	ErrEmptyKey = errors.New("store: empty key")

	// ErrNilResource is returned when adding a nil descriptor.
	ErrNilResource = errors.New("store: nil resource")
)

// DuplicateKeyError indicates a key is already registered in a category.
type DuplicateKeyError struct {
	Category asset.Category
	Key      string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("store: duplicate %s key %q", e.Category, e.Key)
}

// CategoryMismatchError indicates a descriptor does not belong to the
// category it was added under.
type CategoryMismatchError struct {
	Key  string
	Want asset.Category
	Got  asset.Category
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("store: %q is a %s, not a %s", e.Key, e.Got, e.Want)
}

// entry is one arena slot.
type entry struct {
	generation uint32
	refs       int
	key        string
	resource   asset.Resource
}

func (e *entry) live() bool { return e.refs > 0 }

// lookupKey indexes resources by category and key.
type lookupKey struct {
	category asset.Category
	key      string
}

// serials hands out store identities; handles carry the serial of the store
// that issued them.
var serials atomic.Uint32

// Store is a reference-counted resource store.
//
// Resources live in an arena and are referred to by generational handles.
// The store holds one canonical reference to every resource it registered;
// each successful Find hands out one more. A resource is freed when the last
// reference is released, and its arena slot is reused with a new generation
// so stale handles never resolve. Handles issued by another store, including
// an earlier store for the same keys, never resolve either.
//
// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	id     uint32
	log    *slog.Logger
	arena  []entry
	free   []uint32
	byKey  map[lookupKey]uint32
	closed bool
}

// New creates an empty store.
func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		id:    serials.Add(1),
		log:   o.logger,
		byKey: make(map[lookupKey]uint32),
	}
}

func (s *Store) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return defaults.Logger()
}

// Add registers r under key and returns the store's handle to it.
// The returned handle is the store's canonical reference; callers that keep
// it past Remove or Close should obtain their own reference with Find.
func (s *Store) Add(c asset.Category, key string, r asset.Resource) (asset.Handle, error) {
	if key == "" {
		return asset.Empty, ErrEmptyKey
	}
	if r == nil {
		return asset.Empty, ErrNilResource
	}
	if r.Category() != c {
		return asset.Empty, &CategoryMismatchError{Key: key, Want: c, Got: r.Category()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return asset.Empty, ErrClosed
	}
	lk := lookupKey{category: c, key: key}
	if _, dup := s.byKey[lk]; dup {
		return asset.Empty, &DuplicateKeyError{Category: c, Key: key}
	}

	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.arena))
		s.arena = append(s.arena, entry{})
	}
	e := &s.arena[idx]
	e.generation++
	e.refs = 1
	e.key = key
	e.resource = r
	s.byKey[lk] = idx

	return asset.NewHandle(c, s.id, idx, e.generation), nil
}

// Find looks up the resource registered under key in category c and returns
// a new reference to it. A miss is logged as a warning and returns
// asset.Empty.
func (s *Store) Find(c asset.Category, key string) asset.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byKey[lookupKey{category: c, key: key}]
	if !ok || s.closed {
		s.logger().Warn("store: resource not found", "category", c, "key", key)
		return asset.Empty
	}
	e := &s.arena[idx]
	e.refs++
	return asset.NewHandle(c, s.id, idx, e.generation)
}

// entryFor returns the live entry for h. Must be called with lock held.
func (s *Store) entryFor(h asset.Handle) (*entry, bool) {
	if h.IsEmpty() || h.Owner() != s.id || int(h.Index()) >= len(s.arena) {
		return nil, false
	}
	e := &s.arena[h.Index()]
	if !e.live() || e.generation != h.Generation() || e.resource.Category() != h.Category() {
		return nil, false
	}
	return e, true
}

// Release drops one reference. When the last reference goes the resource is
// freed. Releasing an empty or stale handle does nothing.
func (s *Store) Release(h asset.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entryFor(h)
	if !ok {
		return
	}
	s.unref(h.Index(), e)
}

// unref drops one reference of e. Must be called with lock held.
func (s *Store) unref(idx uint32, e *entry) {
	e.refs--
	if e.refs > 0 {
		return
	}
	s.logger().Debug("store: resource freed", "category", e.resource.Category(), "key", e.key)
	lk := lookupKey{category: e.resource.Category(), key: e.key}
	if cur, ok := s.byKey[lk]; ok && cur == idx {
		delete(s.byKey, lk)
	}
	e.key = ""
	e.resource = nil
	s.free = append(s.free, idx)
}

// Remove unregisters key and drops the store's canonical reference.
// The resource survives while other holders keep references.
// It reports whether key was registered.
func (s *Store) Remove(c asset.Category, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lk := lookupKey{category: c, key: key}
	idx, ok := s.byKey[lk]
	if !ok {
		return false
	}
	delete(s.byKey, lk)
	s.unref(idx, &s.arena[idx])
	return true
}

// Resolve returns the descriptor h refers to.
func (s *Store) Resolve(h asset.Handle) (asset.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entryFor(h)
	if !ok {
		return nil, false
	}
	return e.resource, true
}

// RefCount returns the number of live references to h's resource, or 0 if
// h does not resolve.
func (s *Store) RefCount(h asset.Handle) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entryFor(h)
	if !ok {
		return 0
	}
	return e.refs
}

// Len returns the number of live resources, registered or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.arena) - len(s.free)
}

// Keys returns the registered keys of category c, sorted.
func (s *Store) Keys(c asset.Category) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for lk := range s.byKey {
		if lk.category == c {
			keys = append(keys, lk.key)
		}
	}
	slices.Sort(keys)
	return keys
}

// Close unregisters every key and drops the store's canonical references.
// Resources still referenced elsewhere stay resolvable until released.
// Close is idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for lk, idx := range s.byKey {
		delete(s.byKey, lk)
		s.unref(idx, &s.arena[idx])
	}
	s.logger().Debug("store: closed", "live", len(s.arena)-len(s.free))
}

// Closed reports whether Close has been called.
func (s *Store) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}
