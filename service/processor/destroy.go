package processor

import (
	"context"

	"github.com/edwingeng/deque"
	"github.com/pingcap/log"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/service/dao"
	"github.com/viant/procman/service/event"
	"go.uber.org/zap"
)

type frame struct {
	process  *process.Process
	expanded bool
}

// Destroy tears down the named process and all its descendants, children
// strictly before their parent, then reschedules once.
func (s *Service) Destroy(ctx context.Context, name string) error {
	target, err := s.load(ctx, name)
	if err != nil {
		return err
	}
	stack := deque.NewDeque()
	stack.PushBack(&frame{process: target})
	removed := 0
	for !stack.Empty() {
		top := stack.Back().(*frame)
		if !top.expanded {
			top.expanded = true
			children := top.process.Children
			for i := len(children) - 1; i >= 0; i-- {
				child, err := s.processes.Load(ctx, children[i])
				if err != nil {
					continue
				}
				stack.PushBack(&frame{process: child})
			}
			continue
		}
		stack.PopBack()
		if err = s.teardown(ctx, top.process); err != nil {
			return err
		}
		removed++
	}
	log.Debug("processor: destroyed", zap.String("process", name), zap.Int("removed", removed))
	return s.scheduler.Reschedule()
}

// teardown releases everything p holds or awaits and unlinks it from the
// running slot, the ready queue, the registry and its parent.
func (s *Service) teardown(ctx context.Context, p *process.Process) error {
	if err := s.allocator.ReleaseAll(ctx, p); err != nil {
		return err
	}
	s.scheduler.Evict(p.Name)
	if err := s.processes.Delete(ctx, p.Name); err != nil && err != dao.ErrNotFound {
		return err
	}
	if p.Parent != "" {
		if parent, err := s.processes.Load(ctx, p.Parent); err == nil {
			parent.RemoveChild(p.Name)
		}
	}
	s.emit(&event.Transition{Kind: event.KindDestroyed, Process: p.Name, From: p.State})
	return nil
}
