package allocator

import (
	"context"
	"strconv"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/model/resource"
	"github.com/viant/procman/model/types"
	"github.com/viant/procman/service/dao"
	"github.com/viant/procman/service/event"
	"github.com/viant/procman/service/scheduler"
	"go.uber.org/zap"
)

// Service allocates resource units to processes
type Service struct {
	specs     []Spec
	resources map[string]*resource.Resource
	order     []string
	processes dao.Service[string, process.Process]
	scheduler *scheduler.Service
	notify    event.Notify
}

// Reset discards every resource and recreates the configured set
func (s *Service) Reset() {
	s.resources = make(map[string]*resource.Resource, len(s.specs))
	s.order = s.order[:0]
	for _, spec := range s.specs {
		s.resources[spec.ID] = resource.New(spec.ID, spec.Units)
		s.order = append(s.order, spec.ID)
	}
}

// Lookup resolves a resource by id, case-insensitive id, or 1-based ordinal
func (s *Service) Lookup(name string) (*resource.Resource, error) {
	if ret, ok := s.resources[name]; ok {
		return ret, nil
	}
	for _, id := range s.order {
		if strings.EqualFold(id, name) {
			return s.resources[id], nil
		}
	}
	if ordinal, err := strconv.Atoi(name); err == nil && ordinal >= 1 && ordinal <= len(s.order) {
		return s.resources[s.order[ordinal-1]], nil
	}
	return nil, types.ErrUnknownResource.GenWithStackByArgs(name)
}

// Resources returns resources in registry order
func (s *Service) Resources() []*resource.Resource {
	ret := make([]*resource.Resource, 0, len(s.order))
	for _, id := range s.order {
		ret = append(ret, s.resources[id])
	}
	return ret
}

// Attach grants units of r to p, or blocks p when not enough units are
// available. Requests that could never be satisfied are rejected.
func (s *Service) Attach(p *process.Process, r *resource.Resource, units int) error {
	if units < 1 {
		return types.ErrInvalidRequest.GenWithStackByArgs(r.ID, "units must be positive")
	}
	if units > r.Total {
		return types.ErrInvalidRequest.GenWithStackByArgs(r.ID, "units exceed total capacity")
	}
	if held, ok := r.Attached(p.Name); ok && held+units > r.Total {
		return types.ErrInvalidRequest.GenWithStackByArgs(r.ID, "combined units exceed total capacity")
	}
	if units > r.Available {
		s.block(p, r, units)
		return nil
	}
	s.commit(p, r, units)
	return nil
}

func (s *Service) block(p *process.Process, r *resource.Resource, units int) {
	pending := r.AddWaiter(p.Name, units)
	s.scheduler.Suspend(p, r.ID, units)
	log.Debug("allocator: blocked",
		zap.String("process", p.Name),
		zap.String("resource", r.ID),
		zap.Int("pending", pending),
		zap.Int("available", r.Available))
}

func (s *Service) commit(p *process.Process, r *resource.Resource, units int) {
	held := r.Commit(p.Name, units)
	p.SetHolding(r.ID, held)
	s.emit(&event.Transition{Kind: event.KindAllocated, Process: p.Name, Resource: r.ID, Units: units})
}

// Release returns units of r held by p. Pending requests are re-examined
// even when the release itself is rejected for exceeding the held amount.
func (s *Service) Release(ctx context.Context, p *process.Process, r *resource.Resource, units int) error {
	if units < 1 {
		return types.ErrInvalidRequest.GenWithStackByArgs(r.ID, "units must be positive")
	}
	if units > r.Total {
		return types.ErrInvalidRequest.GenWithStackByArgs(r.ID, "units exceed total capacity")
	}
	if _, ok := r.Attached(p.Name); !ok {
		return types.ErrNotHeld.GenWithStackByArgs(p.Name, r.ID)
	}
	var releaseErr error
	held := r.Detach(p.Name)
	remaining := held - units
	if remaining < 0 {
		r.Restore(p.Name, held)
		releaseErr = types.ErrInvalidRequest.GenWithStackByArgs(r.ID, "units exceed held amount")
	} else {
		r.Restore(p.Name, remaining)
		r.Return(units)
		p.SetHolding(r.ID, remaining)
		s.emit(&event.Transition{Kind: event.KindReleased, Process: p.Name, Resource: r.ID, Units: units})
	}
	if err := s.updateBlockedList(ctx, r); err != nil {
		return err
	}
	return releaseErr
}

// updateBlockedList promotes pending requests in registration order until
// none fits into the available units.
func (s *Service) updateBlockedList(ctx context.Context, r *resource.Resource) error {
	for {
		waiter := r.NextSatisfiable()
		if waiter == nil {
			return nil
		}
		r.RemoveWaiter(waiter.Process)
		p, err := s.processes.Load(ctx, waiter.Process)
		if err != nil {
			return errors.Annotatef(err, "failed to load waiter %s of %s", waiter.Process, r.ID)
		}
		s.scheduler.Wake(p)
		s.commit(p, r, waiter.Units)
		log.Debug("allocator: unblocked",
			zap.String("process", p.Name),
			zap.String("resource", r.ID),
			zap.Int("units", waiter.Units),
			zap.Int("available", r.Available))
	}
}

// ReleaseAll cancels the pending request of p and returns everything it
// holds, resource by resource in registry order.
func (s *Service) ReleaseAll(ctx context.Context, p *process.Process) error {
	if wait := p.BlockedOn; wait != nil {
		if r, ok := s.resources[wait.Resource]; ok {
			r.RemoveWaiter(p.Name)
		}
		p.BlockedOn = nil
	}
	for _, id := range s.order {
		r := s.resources[id]
		held, ok := r.Attached(p.Name)
		if !ok {
			continue
		}
		if err := s.Release(ctx, p, r, held); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) emit(t *event.Transition) {
	if s.notify != nil {
		s.notify(t)
	}
}

// New creates an allocator backed by the process registry and scheduler
func New(processes dao.Service[string, process.Process], scheduler *scheduler.Service, opts ...Option) *Service {
	ret := &Service{
		specs:     DefaultSpecs(),
		processes: processes,
		scheduler: scheduler,
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.Reset()
	return ret
}
