package dao

import (
	"context"
)

// Service is a keyed record registry.
//
// Implementations keep List output stable across calls so that callers can
// rely on it for deterministic listings.
type Service[K comparable, T any] interface {
	// Save inserts or overwrites the record under its key
	Save(ctx context.Context, t *T) error
	// Load returns ErrNotFound for a missing key
	Load(ctx context.Context, id K) (*T, error)
	// Delete returns ErrNotFound for a missing key
	Delete(ctx context.Context, id K) error
	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
