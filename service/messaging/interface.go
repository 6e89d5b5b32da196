package messaging

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by non-blocking publishers when the queue buffer
// has no room left.
var ErrQueueFull = errors.New("messaging: queue full")

// Queue is a typed message queue
type Queue[T any] interface {
	// Publish enqueues t without blocking
	Publish(ctx context.Context, t *T) error

	// Consume waits for the next message or ctx cancellation
	Consume(ctx context.Context) (Message[T], error)
}

// Message wraps a consumed payload
type Message[T any] interface {
	T() *T

	// Ack marks the message handled; a second Ack is an error
	Ack() error
}
