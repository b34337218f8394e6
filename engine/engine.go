// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package engine ties the resource store and the default asset registry to
// one startup/shutdown lifecycle.
//
// Start seeds a fresh store from the manifest and then populates the
// registry. Shutdown clears the registry before it closes the store, so the
// registry never holds a handle into a store that is gone.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/defaults"
	"github.com/gogpu/defaults/asset"
	"github.com/gogpu/defaults/store"
)

// ErrAlreadyRunning is returned by Start on a running engine.
var ErrAlreadyRunning = errors.New("engine: already running")

// Engine owns a resource store and the default asset registry backed by it.
// An Engine is driven from one goroutine; it is not safe for concurrent
// Start/Shutdown.
type Engine struct {
	log      *slog.Logger
	manifest *store.Manifest

	store    *store.Store
	registry *defaults.Registry
	running  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for the engine, its store and its registry.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithManifest sets the manifest the store is seeded from. Without it the
// built-in default manifest is used.
func WithManifest(m *store.Manifest) Option {
	return func(e *Engine) {
		e.manifest = m
	}
}

// New creates a stopped engine. Its registry exists for the engine's whole
// life and reads as empty while the engine is stopped.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.registry = defaults.New(sessionStore{e}, e.registryOptions()...)
	return e
}

// sessionStore forwards registry lookups to the store of the running session.
type sessionStore struct{ e *Engine }

func (s sessionStore) Find(c asset.Category, key string) asset.Handle {
	if s.e.store == nil || s.e.store.Closed() {
		return asset.Empty
	}
	return s.e.store.Find(c, key)
}

func (s sessionStore) Release(h asset.Handle) {
	if s.e.store != nil {
		s.e.store.Release(h)
	}
}

func (e *Engine) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return defaults.Logger()
}

func (e *Engine) registryOptions() []defaults.Option {
	if e.log == nil {
		return nil
	}
	return []defaults.Option{defaults.WithLogger(e.log)}
}

// Start seeds a new store and populates the default asset registry.
// If seeding fails the store is closed and the engine stays stopped.
func (e *Engine) Start() error {
	if e.running {
		return ErrAlreadyRunning
	}

	m := e.manifest
	if m == nil {
		var err error
		m, err = store.DefaultManifest()
		if err != nil {
			return fmt.Errorf("engine: %w", err)
		}
	}

	var sopts []store.Option
	if e.log != nil {
		sopts = append(sopts, store.WithLogger(e.log))
	}
	s := store.New(sopts...)
	if err := m.Apply(s); err != nil {
		s.Close()
		return fmt.Errorf("engine: seed store: %w", err)
	}

	e.store = s
	e.registry.Populate()
	e.running = true

	e.logger().Info("engine: started",
		"resources", s.Len(),
		"defaults", e.registry.Resolved(),
		"missing", defaults.NumSlots-e.registry.Resolved())
	return nil
}

// Shutdown clears the registry and then closes the store.
// It is safe to call on an engine that is not running.
func (e *Engine) Shutdown() {
	if !e.running {
		return
	}
	e.registry.Clear()
	e.store.Close()
	e.running = false
	e.logger().Info("engine: stopped", "leaked", e.store.Len())
}

// Running reports whether the engine has been started and not shut down.
func (e *Engine) Running() bool { return e.running }

// Defaults returns the default asset registry.
func (e *Engine) Defaults() *defaults.Registry { return e.registry }

// Store returns the resource store of the current or last session, or nil
// before the first Start.
func (e *Engine) Store() *store.Store { return e.store }
