package scheduler

import "github.com/viant/procman/service/event"

type Option func(*Service)

// WithNotify registers a transition observer
func WithNotify(notify event.Notify) Option {
	return func(s *Service) {
		s.notify = notify
	}
}
