package dao

import "errors"

// Registry errors. Stores return these unwrapped so callers can map them with
// errors.Is onto engine level error kinds.
var (
	ErrNotFound  = errors.New("dao: record not found")
	ErrInvalidID = errors.New("dao: record key is empty")
	ErrNilEntity = errors.New("dao: nil record")
)
