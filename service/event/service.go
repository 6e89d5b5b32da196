package event

import (
	"reflect"
	"sync"

	"github.com/viant/procman/service/messaging"
	"github.com/viant/procman/service/messaging/memory"
)

// Service hands out one publisher and at most one listener per payload type,
// each backed by its own in-memory queue.
type Service struct {
	typedPublishers map[reflect.Type]any
	typedListener   map[reflect.Type]any
	mux             *sync.RWMutex
	newQueueConfig  func(name string) memory.Config
}

func New(opts ...Option) *Service {
	ret := &Service{
		typedPublishers: make(map[reflect.Type]any),
		typedListener:   make(map[reflect.Type]any),
		mux:             &sync.RWMutex{},
		newQueueConfig:  func(string) memory.Config { return memory.DefaultConfig() },
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func QueueOf[T any](s *Service, name string) messaging.Queue[T] {
	return memory.NewQueue[T](s.newQueueConfig(name))
}

// Close stops every registered listener
func (s *Service) Close() {
	s.mux.Lock()
	listeners := s.typedListener
	s.typedListener = make(map[reflect.Type]any)
	s.mux.Unlock()
	for _, l := range listeners {
		if stopper, ok := l.(interface{ Stop() }); ok {
			stopper.Stop()
		}
	}
}

func keyOf[T any]() reflect.Type {
	var t T
	rType := reflect.TypeOf(t)
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return rType
}

// SetListenerOf starts handler on the T queue, replacing any previous listener
func SetListenerOf[T any](s *Service, handler func(*Event[T])) {
	key := keyOf[T]()
	s.mux.Lock()
	previous, ok := s.typedListener[key]
	delete(s.typedListener, key)
	s.mux.Unlock()
	if ok {
		previous.(*Listener[T]).Stop()
	}
	listener := NewListener[T](PublisherOf[T](s), handler)
	s.mux.Lock()
	s.typedListener[key] = listener
	listener.Start()
	s.mux.Unlock()
}

// HasListenerOf reports whether a listener consumes the T queue
func HasListenerOf[T any](s *Service) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	_, ok := s.typedListener[keyOf[T]()]
	return ok
}

// PublisherOf returns a publisher for the provided type
func PublisherOf[T any](s *Service) *Publisher[T] {
	key := keyOf[T]()
	s.mux.RLock()
	ret, ok := s.typedPublishers[key]
	s.mux.RUnlock()
	if ok {
		return ret.(*Publisher[T])
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if ret, ok = s.typedPublishers[key]; ok {
		return ret.(*Publisher[T])
	}
	publisher := NewPublisher[T](QueueOf[Event[T]](s, key.String()))
	s.typedPublishers[key] = publisher
	return publisher
}
