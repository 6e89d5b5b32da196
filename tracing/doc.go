// Package tracing wraps OpenTelemetry so that engine operations can open and
// close spans without importing the upstream packages directly.
package tracing
