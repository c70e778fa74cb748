// Package jsonfile persists records as a pretty printed JSON array in a single file.
package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is anything stored by id
type Record interface {
	GetID() string
}

// Store keeps a slice of records in one JSON file. Every call reads the file
// and every mutation rewrites it, so edits made by hand between calls are kept.
type Store[T Record] struct {
	mu     sync.Mutex
	path   string
	entity string
	log    *logger.Logger
}

// NewStore creates a store for path. entity names the record in error messages.
func NewStore[T Record](path, entity string, log *logger.Logger) *Store[T] {
	return &Store[T]{
		path:   path,
		entity: entity,
		log:    log,
	}
}

// Path returns the backing file
func (s *Store[T]) Path() string {
	return s.path
}

// EnsureFile creates the parent directory and an empty array file when missing
func (s *Store[T]) EnsureFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureFile()
}

func (s *Store[T]) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return ierr.WithError(err).
			WithHintf("Could not create data directory %s", filepath.Dir(s.path)).
			Mark(ierr.ErrSystem)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return ierr.WithError(err).
			WithHintf("Could not access %s", s.path).
			Mark(ierr.ErrSystem)
	}
	s.log.Debugw("creating data file", "path", s.path)
	return s.write([]T{})
}

func (s *Store[T]) read() ([]T, error) {
	if err := s.ensureFile(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Could not read %s", s.path).
			Mark(ierr.ErrSystem)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("%s is not a valid JSON array", s.path).
			Mark(ierr.ErrSystem)
	}
	return items, nil
}

// write replaces the file through a temp file so a crash never leaves half an array
func (s *Store[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Could not encode %s records", s.entity).
			Mark(ierr.ErrSystem)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Could not write %s", s.path).
			Mark(ierr.ErrSystem)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return ierr.WithError(err).
			WithHintf("Could not write %s", s.path).
			Mark(ierr.ErrSystem)
	}
	if err := tmp.Close(); err != nil {
		return ierr.WithError(err).
			WithHintf("Could not write %s", s.path).
			Mark(ierr.ErrSystem)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return ierr.WithError(err).
			WithHintf("Could not write %s", s.path).
			Mark(ierr.ErrSystem)
	}
	return nil
}

func (s *Store[T]) notFound(id string) error {
	return ierr.NewErrorf("%s %s not found", s.entity, id).
		WithHintf("%s with ID %q not found.", lo.Capitalize(s.entity), id).
		WithReportableDetails(map[string]any{
			"id": id,
		}).
		Mark(ierr.ErrNotFound)
}

// List returns every record in file order
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Get returns the record with the given id
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	items, err := s.read()
	if err != nil {
		return zero, err
	}
	item, ok := lo.Find(items, func(item T) bool { return item.GetID() == id })
	if !ok {
		return zero, s.notFound(id)
	}
	return item, nil
}

// Create appends a record. The id must already be set and unique.
func (s *Store[T]) Create(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	id := item.GetID()
	if lo.ContainsBy(items, func(existing T) bool { return existing.GetID() == id }) {
		return ierr.NewErrorf("%s %s already exists", s.entity, id).
			WithHintf("%s with ID %q already exists.", lo.Capitalize(s.entity), id).
			Mark(ierr.ErrAlreadyExists)
	}

	s.log.Debugw("creating record", "entity", s.entity, "id", id)
	return s.write(append(items, item))
}

// Update replaces the record with the same id, keeping its position
func (s *Store[T]) Update(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	id := item.GetID()
	_, idx, ok := lo.FindIndexOf(items, func(existing T) bool { return existing.GetID() == id })
	if !ok {
		return s.notFound(id)
	}
	items[idx] = item

	s.log.Debugw("updating record", "entity", s.entity, "id", id)
	return s.write(items)
}

// Delete removes the record with the given id
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	remaining := lo.Reject(items, func(item T, _ int) bool { return item.GetID() == id })
	if len(remaining) == len(items) {
		return s.notFound(id)
	}

	s.log.Debugw("deleting record", "entity", s.entity, "id", id)
	return s.write(remaining)
}
