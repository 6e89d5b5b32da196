package progress

import (
	"sync"
	"time"

	"github.com/viant/procman/internal/clock"
)

// Delta represents an incremental counter change. The fields are signed and
// therefore can be either positive (increment) or negative (decrement).
type Delta struct {
	Created     int
	Destroyed   int
	Blocked     int
	Unblocked   int
	Preemptions int
	Timeouts    int
	Allocations int
	Releases    int
	Errors      int
	Dropped     int
}

// Progress keeps aggregated counters for the current session. It is safe for
// concurrent use.
type Progress struct {
	SessionID string    `json:"sessionID" yaml:"sessionID"`
	StartedAt time.Time `json:"startedAt" yaml:"startedAt"`

	Created     int `json:"created" yaml:"created"`
	Destroyed   int `json:"destroyed" yaml:"destroyed"`
	Blocked     int `json:"blocked" yaml:"blocked"`
	Unblocked   int `json:"unblocked" yaml:"unblocked"`
	Preemptions int `json:"preemptions" yaml:"preemptions"`
	Timeouts    int `json:"timeouts" yaml:"timeouts"`
	Allocations int `json:"allocations" yaml:"allocations"`
	Releases    int `json:"releases" yaml:"releases"`
	Errors      int `json:"errors" yaml:"errors"`
	// Dropped counts transition events lost to a full event queue
	Dropped int `json:"dropped" yaml:"dropped"`

	mux      sync.Mutex
	onChange func(Progress)
}

// New creates a tracker for sessionID
func New(sessionID string) *Progress {
	return &Progress{SessionID: sessionID, StartedAt: clock.Now()}
}

// Update applies the supplied delta to the tracker. If an onChange callback
// has been registered it is invoked with a copy of the updated tracker
// outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.Created += d.Created
	p.Destroyed += d.Destroyed
	p.Blocked += d.Blocked
	p.Unblocked += d.Unblocked
	p.Preemptions += d.Preemptions
	p.Timeouts += d.Timeouts
	p.Allocations += d.Allocations
	p.Releases += d.Releases
	p.Errors += d.Errors
	p.Dropped += d.Dropped
	snapshot := p.copy()
	cb := p.onChange
	p.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Reset zeroes every counter and starts a new session
func (p *Progress) Reset(sessionID string) {
	if p == nil {
		return
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	p.SessionID, p.StartedAt = sessionID, clock.Now()
	p.Created, p.Destroyed, p.Blocked, p.Unblocked = 0, 0, 0, 0
	p.Preemptions, p.Timeouts, p.Allocations, p.Releases = 0, 0, 0, 0
	p.Errors, p.Dropped = 0, 0
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.copy()
}

// OnChange registers a callback that is invoked after every Update. Passing
// nil disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.onChange = cb
	p.mux.Unlock()
}

func (p *Progress) copy() Progress {
	return Progress{
		SessionID:   p.SessionID,
		StartedAt:   p.StartedAt,
		Created:     p.Created,
		Destroyed:   p.Destroyed,
		Blocked:     p.Blocked,
		Unblocked:   p.Unblocked,
		Preemptions: p.Preemptions,
		Timeouts:    p.Timeouts,
		Allocations: p.Allocations,
		Releases:    p.Releases,
		Errors:      p.Errors,
		Dropped:     p.Dropped,
	}
}
