package testutil

import (
	"context"
	"fmt"
	"sync"

	ierr "github.com/invocli/invocli/internal/errors"
)

// FilterFunc is a generic filter function type
type FilterFunc[T any] func(ctx context.Context, item T) bool

// InMemoryStore implements a generic in-memory store that remembers insertion order
type InMemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// NewInMemoryStore creates a new InMemoryStore
func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{
		items: make(map[string]T),
	}
}

// Create adds a new item to the store
func (s *InMemoryStore[T]) Create(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewError(fmt.Sprintf("item %s already exists", id)).
			Mark(ierr.ErrAlreadyExists)
	}

	s.items[id] = item
	s.order = append(s.order, id)
	return nil
}

// Get retrieves an item by ID
func (s *InMemoryStore[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item, exists := s.items[id]; exists {
		return item, nil
	}

	var zero T
	return zero, ierr.NewError(fmt.Sprintf("item %s not found", id)).
		Mark(ierr.ErrNotFound)
}

// List retrieves items in insertion order
func (s *InMemoryStore[T]) List(ctx context.Context, filterFn FilterFunc[T]) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		item := s.items[id]
		if filterFn == nil || filterFn(ctx, item) {
			result = append(result, item)
		}
	}
	return result, nil
}

// Update updates an existing item
func (s *InMemoryStore[T]) Update(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return ierr.NewError(fmt.Sprintf("item %s not found", id)).
			Mark(ierr.ErrNotFound)
	}

	s.items[id] = item
	return nil
}

// Delete removes an item from the store
func (s *InMemoryStore[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return ierr.NewError(fmt.Sprintf("item %s not found", id)).
			Mark(ierr.ErrNotFound)
	}

	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes all items from the store
func (s *InMemoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
	s.order = nil
}
