// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new Target.
type Factory func(opts Options) (Target, error)

// RegistryEntry is a registered target implementation.
type RegistryEntry struct {
	Name string

	// Priority orders NewTarget's choice (higher = preferred).
	Priority int

	Factory Factory

	// Available reports whether the implementation can be used.
	Available func() bool
}

var globalRegistry = &Registry{}

// Registry maps target names to factories.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates an empty registry. Most code uses the global
// registry through Register and NewTargetByName.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

// Register adds a target to the global registry. A nil available means
// always available. Registering an existing name replaces it.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// List returns the registered names, highest priority first.
func List() []string { return globalRegistry.List() }

// NewTarget creates a target with the best available implementation.
func NewTarget(opts Options) (Target, error) { return globalRegistry.NewTarget(opts) }

// NewTargetByName creates a target with the named implementation.
func NewTargetByName(name string, opts Options) (Target, error) {
	return globalRegistry.NewTargetByName(name, opts)
}

// Register adds a target to r.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// List returns the registered names, highest priority first.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(false)
}

// NewTarget tries every available implementation in priority order and
// returns the first target created.
func (r *Registry) NewTarget(opts Options) (Target, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	r.mu.RUnlock()

	if len(names) == 0 {
		return nil, ErrNoTargetAvailable
	}
	var errs []error
	for _, name := range names {
		t, err := r.NewTargetByName(name, opts)
		if err == nil {
			return t, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewTargetByName creates a target with the named implementation.
func (r *Registry) NewTargetByName(name string, opts Options) (Target, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &TargetNotFoundError{Name: name}
	}
	if !e.Available() {
		return nil, &TargetUnavailableError{Name: name}
	}
	return e.Factory(opts)
}

// sortedNames must be called with r.mu held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ErrNoTargetAvailable is returned when nothing is registered or available.
var ErrNoTargetAvailable = errors.New("surface: no target available")

// TargetNotFoundError indicates a name that is not registered.
type TargetNotFoundError struct {
	Name string
}

func (e *TargetNotFoundError) Error() string {
	return "surface: target not found: " + e.Name
}

// TargetUnavailableError indicates a registered target that is not
// available.
type TargetUnavailableError struct {
	Name string
}

func (e *TargetUnavailableError) Error() string {
	return "surface: target unavailable: " + e.Name
}
