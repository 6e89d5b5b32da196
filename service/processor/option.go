package processor

import (
	"github.com/viant/procman/service/allocator"
	"github.com/viant/procman/service/event"
)

type Option func(*Service)

// WithNotify registers a transition observer shared by the scheduler and the
// allocator
func WithNotify(notify event.Notify) Option {
	return func(s *Service) {
		s.notify = notify
	}
}

// WithInit sets the name and priority of the root process
func WithInit(name string, priority int) Option {
	return func(s *Service) {
		s.config.InitName = name
		s.config.InitPriority = priority
	}
}

// WithResources sets the resources recreated on every initialisation
func WithResources(specs ...allocator.Spec) Option {
	return func(s *Service) {
		s.config.Resources = specs
	}
}

// WithConfig sets the configuration for the service
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}
