// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     rows
// Description: Reusable row registry for list views
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package rows keeps factories and pools of list rows keyed by a reuse
// identifier. Views dequeue rows while rendering and recycle them when the
// list is rebuilt.
package rows

import (
	"fmt"
	"sync"
)

// Row is a reusable list row.
type Row interface {
	ReuseIdentifier() string
}

// Preparer is implemented by rows that reset state before reuse.
type Preparer interface {
	PrepareForReuse()
}

// Registry maps reuse identifiers to row factories and pooled rows.
type Registry struct {
	mu        sync.Mutex
	factories map[string]func() Row
	pool      map[string][]Row
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]func() Row),
		pool:      make(map[string][]Row),
	}
}

// Register installs factory under id, replacing any earlier factory.
func (r *Registry) Register(id string, factory func() Row) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = factory
}

// Registered reports whether id has a factory.
func (r *Registry) Registered(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.factories[id]
	return ok
}

// Register installs a typed factory under the identifier of the rows it
// builds. The probe row is kept in the pool.
func Register[T Row](r *Registry, factory func() T) string {
	probe := factory()
	id := probe.ReuseIdentifier()
	r.Register(id, func() Row { return factory() })
	r.Recycle(probe)
	return id
}

// Dequeue returns a pooled row for id, or a fresh one from its factory, as
// type T. It panics when id is not registered or the row is not a T; both
// are programming errors.
func Dequeue[T Row](r *Registry, id string) T {
	row := r.dequeue(id)
	typed, ok := row.(T)
	if !ok {
		var want T
		panic(fmt.Sprintf("rows: could not dequeue row %q as %T (got %T)", id, want, row))
	}
	return typed
}

func (r *Registry) dequeue(id string) Row {
	r.mu.Lock()
	factory, ok := r.factories[id]
	if !ok {
		r.mu.Unlock()
		panic(fmt.Sprintf("rows: no row registered for identifier %q", id))
	}
	if pooled := r.pool[id]; len(pooled) > 0 {
		row := pooled[len(pooled)-1]
		r.pool[id] = pooled[:len(pooled)-1]
		r.mu.Unlock()
		return row
	}
	r.mu.Unlock()
	return factory()
}

// Recycle returns rows to their pools. Rows with an unregistered identifier
// are dropped.
func (r *Registry) Recycle(rows ...Row) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		if row == nil {
			continue
		}
		id := row.ReuseIdentifier()
		if _, ok := r.factories[id]; !ok {
			continue
		}
		if p, ok := row.(Preparer); ok {
			p.PrepareForReuse()
		}
		r.pool[id] = append(r.pool[id], row)
	}
}

// Pooled returns the number of idle rows for id.
func (r *Registry) Pooled(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pool[id])
}
