package event

import (
	"time"

	"github.com/viant/procman/internal/clock"
)

// Context identifies where an event originated
type Context struct {
	SessionID string `json:"sessionID"`
	EventType string `json:"eventType"`
	Process   string `json:"process,omitempty"`
	Resource  string `json:"resource,omitempty"`
}

type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
