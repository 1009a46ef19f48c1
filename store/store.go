// SPDX-License-Identifier: MIT

// Package store is an in-memory handle store: a concurrent map from
// generation-free integer handles to values.
//
// Handles are allocated from an atomic counter starting at 1 and are never
// reused. Access follows exclusive-write/shared-read discipline through a
// sync.RWMutex; values stay until Remove is called for their handle.
package store

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
)

// ErrNotFound indicates a handle that is not (or no longer) in the store.
var ErrNotFound = errors.New("store: handle not found")

// Handle identifies a stored value.
type Handle uint64

// Store holds values of type T by handle. The zero value is not usable; call New.
type Store[T any] struct {
	mu     sync.RWMutex // guards items
	items  map[Handle]T
	nextID uint64 // atomic handle generator
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{items: make(map[Handle]T)}
}

// Insert stores v under a fresh handle.
func (s *Store[T]) Insert(v T) Handle {
	h := Handle(atomic.AddUint64(&s.nextID, 1))
	s.mu.Lock()
	s.items[h] = v
	s.mu.Unlock()

	return h
}

// Get returns the value stored under h.
func (s *Store[T]) Get(h Handle) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[h]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	return v, nil
}

// With runs fn on the value under h while holding the read lock.
// fn must not call back into the store.
func (s *Store[T]) With(h Handle, fn func(T)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[h]
	if !ok {
		return ErrNotFound
	}
	fn(v)

	return nil
}

// Remove drops h from the store.
func (s *Store[T]) Remove(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[h]; !ok {
		return ErrNotFound
	}
	delete(s.items, h)

	return nil
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Handles returns every live handle in ascending order.
func (s *Store[T]) Handles() []Handle {
	s.mu.RLock()
	out := make([]Handle, 0, len(s.items))
	for h := range s.items {
		out = append(out, h)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
