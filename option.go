package procman

import (
	"github.com/viant/procman/progress"
	"github.com/viant/procman/service/event"
	"github.com/viant/procman/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Option func(s *Service)

// WithConfig sets the engine configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithEventService publishes engine transitions through service
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.eventService = service
	}
}

// WithTransitionListener consumes transition events when events are enabled.
// Without it a debug logging listener drains the queue.
func WithTransitionListener(fn func(*event.Event[event.Transition])) Option {
	return func(s *Service) {
		s.transitions = fn
	}
}

// WithProgressListener registers a callback invoked after every counter change
func WithProgressListener(fn func(progress.Progress)) Option {
	return func(s *Service) {
		s.progressListener = fn
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.config.Tracing = TracingConfig{Enabled: true, Service: serviceName, Version: serviceVersion, Output: outputFile}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
