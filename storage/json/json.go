// Package json persists a typed index as a JSON file guarded by a Locker.
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cocoonstack/hvconf/lock"
	"github.com/cocoonstack/hvconf/storage"
	"github.com/cocoonstack/hvconf/utils"
)

const filePerm = 0o644

// Store implements storage.Store[T] with a JSON file on disk.
// A missing file loads as the zero value; Init() is called after every
// load when T implements storage.Initer.
type Store[T any] struct {
	path   string
	locker lock.Locker
}

var _ storage.Store[struct{}] = (*Store[struct{}])(nil)

// New creates a Store persisting to path, guarded by locker.
func New[T any](path string, locker lock.Locker) *Store[T] {
	return &Store[T]{path: path, locker: locker}
}

// With implements storage.Store.
func (s *Store[T]) With(ctx context.Context, fn func(*T) error) error {
	return lock.WithLock(ctx, s.locker, func() error {
		idx, err := s.load()
		if err != nil {
			return err
		}
		if err := fn(idx); err != nil {
			return err
		}
		return s.save(idx)
	})
}

// View implements storage.Store.
func (s *Store[T]) View(ctx context.Context, fn func(*T) error) error {
	return lock.WithLock(ctx, s.locker, func() error {
		idx, err := s.load()
		if err != nil {
			return err
		}
		return fn(idx)
	})
}

func (s *Store[T]) load() (*T, error) {
	idx := new(T)
	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		// First use: start from the zero value.
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	default:
		if err := json.Unmarshal(data, idx); err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.path, err)
		}
	}
	if initer, ok := any(idx).(storage.Initer); ok {
		initer.Init()
	}
	return idx, nil
}

func (s *Store[T]) save(idx *T) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.path, err)
	}
	if err := utils.WriteFileAtomic(s.path, data, filePerm); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}
