// Package idgen wraps the UUID generator used for simulation session and
// event identifiers so that it can be stubbed in tests.
package idgen
