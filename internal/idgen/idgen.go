package idgen

import "github.com/google/uuid"

// NewFunc generates identifiers; tests replace it for deterministic output.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier
func New() string { return NewFunc() }

// Short returns the first segment of a new identifier, suitable for display.
func Short() string {
	id := New()
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
