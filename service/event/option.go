package event

import (
	"github.com/viant/procman/service/messaging/memory"
)

type Option func(s *Service)

// WithQueueConfig sets the per-queue memory configuration factory
func WithQueueConfig(newConfig func(name string) memory.Config) Option {
	return func(s *Service) {
		s.newQueueConfig = newConfig
	}
}

// WithBuffer sets the buffer size of every queue created by the service
func WithBuffer(size int) Option {
	return func(s *Service) {
		s.newQueueConfig = func(string) memory.Config {
			cfg := memory.DefaultConfig()
			cfg.QueueBuffer = size
			return cfg
		}
	}
}
