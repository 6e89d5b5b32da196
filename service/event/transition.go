package event

import (
	"fmt"

	"github.com/viant/procman/model/process"
)

// Kind names an engine state transition
type Kind string

const (
	KindInitialized Kind = "initialized"
	KindCreated     Kind = "created"
	KindDestroyed   Kind = "destroyed"
	KindScheduled   Kind = "scheduled"
	KindPreempted   Kind = "preempted"
	KindYielded     Kind = "yielded"
	KindBlocked     Kind = "blocked"
	KindUnblocked   Kind = "unblocked"
	KindAllocated   Kind = "allocated"
	KindReleased    Kind = "released"
)

// Transition describes a single change applied by the engine
type Transition struct {
	Kind     Kind          `json:"kind"`
	Process  string        `json:"process,omitempty"`
	Resource string        `json:"resource,omitempty"`
	Units    int           `json:"units,omitempty"`
	From     process.State `json:"from,omitempty"`
	To       process.State `json:"to,omitempty"`
}

// Notify receives transitions as they happen
type Notify func(t *Transition)

func (t *Transition) String() string {
	switch {
	case t.Resource != "":
		return fmt.Sprintf("%s %s %s:%d", t.Kind, t.Process, t.Resource, t.Units)
	case t.From != "" || t.To != "":
		return fmt.Sprintf("%s %s %s->%s", t.Kind, t.Process, t.From, t.To)
	default:
		return fmt.Sprintf("%s %s", t.Kind, t.Process)
	}
}
