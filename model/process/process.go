package process

import (
	"sort"
	"time"

	"github.com/viant/procman/internal/clock"
)

// Wait records a pending resource request of a blocked process.
type Wait struct {
	Resource string `json:"resource"`
	Units    int    `json:"units"`
}

// Process represents a simulated process control block. Parent and Children
// hold process names that are resolved through the process registry, the
// registry alone owns the record lifetime.
type Process struct {
	Name      string         `json:"name"`
	Priority  int            `json:"priority"`
	State     State          `json:"state"`
	Parent    string         `json:"parent,omitempty"`
	Children  []string       `json:"children,omitempty"`
	Held      map[string]int `json:"held,omitempty"`
	BlockedOn *Wait          `json:"blockedOn,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// New creates a ready process
func New(name string, priority int, parent string) *Process {
	now := clock.Now()
	return &Process{
		Name:      name,
		Priority:  priority,
		State:     StateReady,
		Parent:    parent,
		Held:      make(map[string]int),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetState updates the process state; leaving the blocked state clears the
// pending wait.
func (p *Process) SetState(state State) {
	p.State = state
	if state != StateBlocked {
		p.BlockedOn = nil
	}
	p.UpdatedAt = clock.Now()
}

// Block marks the process blocked on resource. Units accumulate when the
// process is already waiting on the same resource.
func (p *Process) Block(resource string, units int) {
	if p.BlockedOn != nil && p.BlockedOn.Resource == resource {
		p.BlockedOn.Units += units
	} else {
		p.BlockedOn = &Wait{Resource: resource, Units: units}
	}
	p.State = StateBlocked
	p.UpdatedAt = clock.Now()
}

func (p *Process) AddChild(name string) {
	p.Children = append(p.Children, name)
}

func (p *Process) RemoveChild(name string) {
	if len(p.Children) == 0 {
		return
	}
	children := p.Children[:0]
	for _, child := range p.Children {
		if child != name {
			children = append(children, child)
		}
	}
	p.Children = children
}

// Holding returns units of resource attached to the process
func (p *Process) Holding(resource string) int {
	return p.Held[resource]
}

// SetHolding records units attached; zero removes the entry
func (p *Process) SetHolding(resource string, units int) {
	if units <= 0 {
		delete(p.Held, resource)
		return
	}
	if p.Held == nil {
		p.Held = make(map[string]int)
	}
	p.Held[resource] = units
}

// HeldResources returns held resource ids in ascending order
func (p *Process) HeldResources() []string {
	ret := make([]string, 0, len(p.Held))
	for id := range p.Held {
		ret = append(ret, id)
	}
	sort.Strings(ret)
	return ret
}

// Snapshot returns a read-only copy of the process
func (p *Process) Snapshot() *Snapshot {
	if p == nil {
		return nil
	}
	ret := &Snapshot{
		Name:     p.Name,
		Priority: p.Priority,
		State:    p.State,
		Parent:   p.Parent,
		Children: append([]string{}, p.Children...),
		Held:     make(map[string]int, len(p.Held)),
	}
	for k, v := range p.Held {
		ret.Held[k] = v
	}
	if p.BlockedOn != nil {
		wait := *p.BlockedOn
		ret.BlockedOn = &wait
	}
	return ret
}

// Snapshot is a detached view of a process used for display and inspection
type Snapshot struct {
	Name      string         `json:"name" yaml:"name"`
	Priority  int            `json:"priority" yaml:"priority"`
	State     State          `json:"state" yaml:"state"`
	Parent    string         `json:"parent,omitempty" yaml:"parent,omitempty"`
	Children  []string       `json:"children" yaml:"children"`
	Held      map[string]int `json:"held" yaml:"held"`
	BlockedOn *Wait          `json:"blockedOn,omitempty" yaml:"blockedOn,omitempty"`
}
