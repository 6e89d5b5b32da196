package processor

import (
	"context"
	"errors"

	"github.com/pingcap/log"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/model/resource"
	"github.com/viant/procman/model/types"
	"github.com/viant/procman/service/allocator"
	"github.com/viant/procman/service/dao"
	"github.com/viant/procman/service/dao/criteria"
	"github.com/viant/procman/service/dao/store"
	"github.com/viant/procman/service/event"
	"github.com/viant/procman/service/scheduler"
	"go.uber.org/zap"
)

// Config represents processor configuration
type Config struct {
	// InitName is the name of the root process
	InitName string
	// InitPriority is the priority of the root process
	InitPriority int
	// Resources are recreated on every initialisation
	Resources []allocator.Spec
}

// DefaultConfig returns the reference configuration: "init" at priority 0
// and R1..R4 with capacities 1..4
func DefaultConfig() Config {
	return Config{
		InitName:     "init",
		InitPriority: 0,
		Resources:    allocator.DefaultSpecs(),
	}
}

// Service runs process lifecycle operations against a single engine state
type Service struct {
	config    Config
	processes *store.MemoryStore[string, process.Process]
	scheduler *scheduler.Service
	allocator *allocator.Service
	notify    event.Notify
}

func newRegistry() *store.MemoryStore[string, process.Process] {
	return store.NewMemoryStore[string, process.Process](
		func(p *process.Process) string { return p.Name },
		store.WithFilter[string, process.Process](func(p *process.Process, parameters []*dao.Parameter) bool {
			return criteria.FilterByState(p.State, parameters)
		}),
	)
}

// Initialize discards every process and resource, recreates the resource set
// and installs the root process as running.
func (s *Service) Initialize(ctx context.Context) error {
	s.processes = newRegistry()
	s.scheduler.Reset()
	s.allocator = allocator.New(s.processes, s.scheduler,
		allocator.WithSpecs(s.config.Resources...),
		allocator.WithNotify(s.emit))
	root := process.New(s.config.InitName, s.config.InitPriority, "")
	if err := s.processes.Save(ctx, root); err != nil {
		return err
	}
	s.emit(&event.Transition{Kind: event.KindInitialized, Process: root.Name})
	s.scheduler.Install(root)
	log.Info("processor: initialized",
		zap.String("init", root.Name),
		zap.Int("resources", len(s.config.Resources)))
	return nil
}

// Create registers a new process as a child of the running process and
// queues it.
func (s *Service) Create(ctx context.Context, name string, priority int) error {
	if _, err := s.processes.Load(ctx, name); err == nil {
		return types.ErrDuplicateName.GenWithStackByArgs(name)
	}
	parent := s.scheduler.Running()
	parentName := ""
	if parent != nil {
		parentName = parent.Name
	}
	child := process.New(name, priority, parentName)
	if err := s.processes.Save(ctx, child); err != nil {
		return types.ErrInvalidRequest.GenWithStackByArgs(name, err.Error())
	}
	if parent != nil {
		parent.AddChild(name)
	}
	s.scheduler.Enqueue(child)
	s.emit(&event.Transition{Kind: event.KindCreated, Process: name, To: process.StateReady})
	log.Debug("processor: created",
		zap.String("process", name),
		zap.Int("priority", priority),
		zap.String("parent", parentName))
	return s.scheduler.Reschedule()
}

// Timeout makes the running process yield to its priority peers
func (s *Service) Timeout(_ context.Context) error {
	return s.scheduler.Yield()
}

// Request asks for units of the named resource on behalf of the running
// process.
func (s *Service) Request(_ context.Context, name string, units int) error {
	current, err := s.scheduler.Runnable()
	if err != nil {
		return err
	}
	r, err := s.allocator.Lookup(name)
	if err != nil {
		return err
	}
	if err = s.allocator.Attach(current, r, units); err != nil {
		return err
	}
	return s.scheduler.Reschedule()
}

// Release returns units of the named resource held by the running process.
func (s *Service) Release(ctx context.Context, name string, units int) error {
	current, err := s.scheduler.Runnable()
	if err != nil {
		return err
	}
	r, err := s.allocator.Lookup(name)
	if err != nil {
		return err
	}
	releaseErr := s.allocator.Release(ctx, current, r, units)
	if err = s.scheduler.Reschedule(); err != nil {
		return err
	}
	return releaseErr
}

// Running returns a snapshot of the running process, or nil
func (s *Service) Running() *process.Snapshot {
	return s.scheduler.Running().Snapshot()
}

// Inspect returns a snapshot of the named process
func (s *Service) Inspect(ctx context.Context, name string) (*process.Snapshot, error) {
	p, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	return p.Snapshot(), nil
}

// InspectResource returns a snapshot of the named resource
func (s *Service) InspectResource(name string) (*resource.Snapshot, error) {
	r, err := s.allocator.Lookup(name)
	if err != nil {
		return nil, err
	}
	return r.Snapshot(), nil
}

// List returns snapshots in creation order, restricted to states when given
func (s *Service) List(ctx context.Context, states ...process.State) ([]*process.Snapshot, error) {
	var parameters []*dao.Parameter
	if len(states) > 0 {
		parameters = append(parameters, &dao.Parameter{Name: criteria.StateParameter, Value: states})
	}
	processes, err := s.processes.List(ctx, parameters...)
	if err != nil {
		return nil, err
	}
	ret := make([]*process.Snapshot, 0, len(processes))
	for _, p := range processes {
		ret = append(ret, p.Snapshot())
	}
	return ret, nil
}

// ReadyQueue returns queued process names in dispatch order
func (s *Service) ReadyQueue() []string {
	return s.scheduler.Ready().Names()
}

// Resources returns snapshots of every resource in registry order
func (s *Service) Resources() []*resource.Snapshot {
	resources := s.allocator.Resources()
	ret := make([]*resource.Snapshot, 0, len(resources))
	for _, r := range resources {
		ret = append(ret, r.Snapshot())
	}
	return ret
}

func (s *Service) load(ctx context.Context, name string) (*process.Process, error) {
	p, err := s.processes.Load(ctx, name)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, types.ErrUnknownProcess.GenWithStackByArgs(name)
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) emit(t *event.Transition) {
	if s.notify != nil {
		s.notify(t)
	}
}

// New creates a processor and initialises the engine state
func New(opts ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	for _, opt := range opts {
		opt(ret)
	}
	ret.scheduler = scheduler.New(scheduler.WithNotify(ret.emit))
	if err := ret.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return ret, nil
}
