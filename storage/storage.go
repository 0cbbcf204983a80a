package storage

import "context"

// Initer is implemented by index types that need their maps allocated
// after a zero-value or partial JSON load.
type Initer interface {
	Init()
}

// Store is a typed persistent index. Implementations serialize the whole
// index on every save; indices here are small (one entry per architecture).
type Store[T any] interface {
	// With loads the index, calls fn under the store's lock, and saves
	// the index back if fn returns nil. fn mutates the index in place.
	With(ctx context.Context, fn func(*T) error) error

	// View loads the index and calls fn under the store's lock without
	// saving afterwards.
	View(ctx context.Context, fn func(*T) error) error
}
