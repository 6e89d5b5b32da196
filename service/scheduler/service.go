package scheduler

import (
	"github.com/pingcap/log"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/model/types"
	"github.com/viant/procman/runtime/queue"
	"github.com/viant/procman/service/event"
	"go.uber.org/zap"
)

// Service owns the ready queue and the single running slot
type Service struct {
	ready   *queue.Ready
	running *process.Process
	notify  event.Notify
}

// Running returns the process occupying the running slot, or nil
func (s *Service) Running() *process.Process {
	return s.running
}

// Ready returns the ready queue
func (s *Service) Ready() *queue.Ready {
	return s.ready
}

// Reset empties the ready queue and the running slot
func (s *Service) Reset() {
	s.ready = queue.NewReady()
	s.running = nil
}

// Install places p in the running slot unconditionally
func (s *Service) Install(p *process.Process) {
	from := p.State
	p.SetState(process.StateRunning)
	s.ready.Remove(p.Name)
	s.running = p
	s.emit(&event.Transition{Kind: event.KindScheduled, Process: p.Name, From: from, To: process.StateRunning})
}

// Enqueue marks p Ready and inserts it behind its priority peers
func (s *Service) Enqueue(p *process.Process) {
	p.SetState(process.StateReady)
	s.ready.Insert(p)
}

// Wake restores a previously blocked process. The process still holding the
// running slot resumes running; any other goes back to the ready queue.
func (s *Service) Wake(p *process.Process) {
	if s.running == p {
		p.SetState(process.StateRunning)
	} else {
		s.Enqueue(p)
	}
	s.emit(&event.Transition{Kind: event.KindUnblocked, Process: p.Name, From: process.StateBlocked, To: p.State})
}

// Suspend marks p Blocked and takes it out of the ready queue. A blocked
// running process keeps the slot until the next Reschedule replaces it.
func (s *Service) Suspend(p *process.Process, resource string, units int) {
	from := p.State
	p.Block(resource, units)
	s.ready.Remove(p.Name)
	s.emit(&event.Transition{Kind: event.KindBlocked, Process: p.Name, Resource: resource, Units: units, From: from, To: process.StateBlocked})
}

// Evict drops name from the running slot and the ready queue
func (s *Service) Evict(name string) {
	if s.running != nil && s.running.Name == name {
		s.running = nil
	}
	s.ready.Remove(name)
}

// Runnable returns the running process if it can act, or ErrNoRunnableProcess
func (s *Service) Runnable() (*process.Process, error) {
	if s.running == nil || s.running.State.IsBlocked() {
		return nil, types.ErrNoRunnableProcess.GenWithStackByArgs()
	}
	return s.running, nil
}

// Yield returns the running process to the ready queue and reschedules
func (s *Service) Yield() error {
	current, err := s.Runnable()
	if err != nil {
		return err
	}
	s.running = nil
	s.Enqueue(current)
	s.emit(&event.Transition{Kind: event.KindYielded, Process: current.Name, From: process.StateRunning, To: process.StateReady})
	return s.Reschedule()
}

// Reschedule applies the preemption rule. Only a strictly higher priority
// head displaces a runnable process.
func (s *Service) Reschedule() error {
	head, ok := s.ready.Peek()
	switch {
	case !ok && s.running == nil:
		log.Error("scheduler: no runnable process")
		return types.ErrNoRunnableProcess.GenWithStackByArgs()
	case s.running == nil:
		s.promote()
	case !ok:
	case s.running.State.IsBlocked():
		log.Debug("scheduler: replacing blocked process", zap.String("blocked", s.running.Name), zap.String("next", head.Name))
		s.promote()
	case s.running.Priority < head.Priority:
		previous := s.running
		s.promote()
		s.Enqueue(previous)
		log.Debug("scheduler: preempted", zap.String("process", previous.Name), zap.String("by", head.Name))
		s.emit(&event.Transition{Kind: event.KindPreempted, Process: previous.Name, From: process.StateRunning, To: process.StateReady})
	}
	return nil
}

func (s *Service) promote() {
	head, _ := s.ready.Pop()
	head.SetState(process.StateRunning)
	s.running = head
	log.Debug("scheduler: running", zap.String("process", head.Name), zap.Int("priority", head.Priority))
	s.emit(&event.Transition{Kind: event.KindScheduled, Process: head.Name, From: process.StateReady, To: process.StateRunning})
}

func (s *Service) emit(t *event.Transition) {
	if s.notify != nil {
		s.notify(t)
	}
}

// New creates a scheduler with an empty ready queue
func New(opts ...Option) *Service {
	ret := &Service{ready: queue.NewReady()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
