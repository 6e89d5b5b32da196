package event

import (
	"context"

	"github.com/viant/procman/internal/clock"
	"github.com/viant/procman/service/messaging"
)

// Publisher moves events of a single payload type through a queue
type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{queue: queue}
}

// Publish enqueues event without blocking; a full queue yields
// messaging.ErrQueueFull and the event is not delivered.
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = clock.Now()
	}
	return p.queue.Publish(ctx, event)
}

// Consume waits for the next event and acknowledges it
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

// Pending returns the number of buffered events, -1 if the queue does not
// expose its size.
func (p *Publisher[T]) Pending() int {
	if sized, ok := p.queue.(interface{ Size() int }); ok {
		return sized.Size()
	}
	return -1
}
