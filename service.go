package procman

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/pingcap/log"
	"github.com/viant/procman/internal/idgen"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/model/resource"
	"github.com/viant/procman/model/types"
	"github.com/viant/procman/progress"
	"github.com/viant/procman/service/event"
	"github.com/viant/procman/service/messaging"
	"github.com/viant/procman/service/processor"
	"github.com/viant/procman/tracing"
	"go.uber.org/zap"
)

// Service is the engine facade. Operations are serialised, traced, counted
// and published as transition events.
type Service struct {
	config           *Config
	mux              sync.Mutex
	processor        *processor.Service
	eventService     *event.Service
	publisher        *event.Publisher[event.Transition]
	progress         *progress.Progress
	progressListener func(progress.Progress)
	transitions      func(*event.Event[event.Transition])
	sessionID        string
}

// Config returns the active configuration
func (s *Service) Config() *Config {
	return s.config
}

// SessionID returns the id assigned by the last initialisation
func (s *Service) SessionID() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.sessionID
}

// Events returns the event service, or nil when events are disabled
func (s *Service) Events() *event.Service {
	return s.eventService
}

// Progress returns a snapshot of the session counters
func (s *Service) Progress() progress.Progress {
	return s.progress.Snapshot()
}

// Initialize discards all processes and resources and starts a new session
// with the root process running.
func (s *Service) Initialize(ctx context.Context) (err error) {
	ctx, span := tracing.StartSpan(ctx, "procman.Initialize", tracing.KindInternal)
	defer func() { s.finish(span, "init", err) }()
	s.mux.Lock()
	defer s.mux.Unlock()
	s.sessionID = idgen.New()
	s.progress.Reset(s.sessionID)
	log.Info("procman: new session", zap.String("session", s.sessionID))
	return s.processor.Initialize(ctx)
}

// Create adds a child of the running process
func (s *Service) Create(ctx context.Context, name string, priority int) (err error) {
	ctx, span := tracing.StartSpan(ctx, "procman.Create", tracing.KindInternal)
	span.WithAttributes(map[string]string{tracing.AttrProcess: name, "priority": strconv.Itoa(priority)})
	defer func() { s.finish(span, "create", err) }()
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.processor.Create(ctx, name, priority)
}

// Destroy removes a process together with its descendants
func (s *Service) Destroy(ctx context.Context, name string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "procman.Destroy", tracing.KindInternal)
	span.WithAttributes(map[string]string{tracing.AttrProcess: name})
	defer func() { s.finish(span, "destroy", err) }()
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.processor.Destroy(ctx, name)
}

// Request asks for units of a resource on behalf of the running process
func (s *Service) Request(ctx context.Context, resourceName string, units int) (err error) {
	ctx, span := tracing.StartSpan(ctx, "procman.Request", tracing.KindInternal)
	span.WithAttributes(map[string]string{tracing.AttrResource: resourceName}).WithUnits(units)
	defer func() { s.finish(span, "request", err) }()
	s.mux.Lock()
	defer s.mux.Unlock()
	if running := s.processor.Running(); running != nil {
		span.WithAttributes(map[string]string{tracing.AttrProcess: running.Name})
	}
	return s.processor.Request(ctx, resourceName, units)
}

// Release returns units of a resource held by the running process
func (s *Service) Release(ctx context.Context, resourceName string, units int) (err error) {
	ctx, span := tracing.StartSpan(ctx, "procman.Release", tracing.KindInternal)
	span.WithAttributes(map[string]string{tracing.AttrResource: resourceName}).WithUnits(units)
	defer func() { s.finish(span, "release", err) }()
	s.mux.Lock()
	defer s.mux.Unlock()
	if running := s.processor.Running(); running != nil {
		span.WithAttributes(map[string]string{tracing.AttrProcess: running.Name})
	}
	return s.processor.Release(ctx, resourceName, units)
}

// Timeout makes the running process yield
func (s *Service) Timeout(ctx context.Context) (err error) {
	ctx, span := tracing.StartSpan(ctx, "procman.Timeout", tracing.KindInternal)
	defer func() { s.finish(span, "timeout", err) }()
	s.mux.Lock()
	defer s.mux.Unlock()
	if running := s.processor.Running(); running != nil {
		span.WithAttributes(map[string]string{tracing.AttrProcess: running.Name})
	}
	return s.processor.Timeout(ctx)
}

// Running returns the running process, or nil when the slot is empty
func (s *Service) Running() *process.Snapshot {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.processor.Running()
}

// Inspect returns the named process
func (s *Service) Inspect(ctx context.Context, name string) (*process.Snapshot, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.processor.Inspect(ctx, name)
}

// InspectResource returns the named resource
func (s *Service) InspectResource(name string) (*resource.Snapshot, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.processor.InspectResource(name)
}

// ListProcesses returns processes in creation order, filtered by states
func (s *Service) ListProcesses(ctx context.Context, states ...process.State) ([]*process.Snapshot, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.processor.List(ctx, states...)
}

// ReadyQueue returns queued process names in dispatch order
func (s *Service) ReadyQueue() []string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.processor.ReadyQueue()
}

// Resources returns all resources in id order
func (s *Service) Resources() []*resource.Snapshot {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.processor.Resources()
}

// Close stops event listeners
func (s *Service) Close() {
	if s.eventService != nil {
		s.eventService.Close()
	}
}

func (s *Service) finish(span *tracing.Span, operation string, err error) {
	tracing.EndSpan(span, err)
	if err == nil {
		return
	}
	s.progress.Update(progress.Delta{Errors: 1})
	if types.IsFatal(err) {
		log.Error("procman: no runnable process", zap.String("op", operation), zap.String("session", s.sessionID))
		return
	}
	log.Warn("procman: operation rejected", zap.String("op", operation), zap.Error(err))
}

// onTransition runs inside engine operations, under the service lock
func (s *Service) onTransition(t *event.Transition) {
	var delta progress.Delta
	switch t.Kind {
	case event.KindCreated:
		delta.Created = 1
	case event.KindDestroyed:
		delta.Destroyed = 1
	case event.KindBlocked:
		delta.Blocked = 1
	case event.KindUnblocked:
		delta.Unblocked = 1
	case event.KindPreempted:
		delta.Preemptions = 1
	case event.KindYielded:
		delta.Timeouts = 1
	case event.KindAllocated:
		delta.Allocations = 1
	case event.KindReleased:
		delta.Releases = 1
	}
	if delta != (progress.Delta{}) {
		s.progress.Update(delta)
	}
	if s.publisher == nil {
		return
	}
	anEvent := event.NewEvent(&event.Context{
		SessionID: s.sessionID,
		EventType: string(t.Kind),
		Process:   t.Process,
		Resource:  t.Resource,
	}, *t)
	if err := s.publisher.Publish(context.Background(), anEvent); err != nil {
		if errors.Is(err, messaging.ErrQueueFull) {
			s.progress.Update(progress.Delta{Dropped: 1})
			log.Warn("procman: event dropped", zap.String("kind", string(t.Kind)), zap.String("process", t.Process))
			return
		}
		log.Warn("procman: failed to publish event", zap.Error(err))
	}
}

func logTransition(e *event.Event[event.Transition]) {
	log.Debug("procman: transition",
		zap.String("session", e.Context.SessionID),
		zap.String("kind", string(e.Data.Kind)),
		zap.String("process", e.Data.Process),
		zap.String("resource", e.Data.Resource),
		zap.Int("units", e.Data.Units))
}

func (s *Service) init() error {
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.config.Tracing.Enabled {
		if err := tracing.Init(s.config.Tracing.Service, s.config.Tracing.Version, s.config.Tracing.Output); err != nil {
			return err
		}
	}
	if s.eventService == nil && s.config.Events.Enabled {
		s.eventService = event.New(event.WithBuffer(s.config.Events.Buffer))
	}
	if s.eventService != nil {
		s.publisher = event.PublisherOf[event.Transition](s.eventService)
		switch {
		case s.transitions != nil:
			event.SetListenerOf[event.Transition](s.eventService, s.transitions)
		case !event.HasListenerOf[event.Transition](s.eventService):
			event.SetListenerOf[event.Transition](s.eventService, logTransition)
		}
	}
	s.sessionID = idgen.New()
	s.progress = progress.New(s.sessionID)
	s.progress.OnChange(s.progressListener)

	var err error
	s.processor, err = processor.New(
		processor.WithInit(s.config.Init.Name, s.config.Init.Priority),
		processor.WithResources(s.config.Resources...),
		processor.WithNotify(s.onTransition))
	return err
}

// New creates an initialised engine
func New(options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(); err != nil {
		return nil, err
	}
	return ret, nil
}
