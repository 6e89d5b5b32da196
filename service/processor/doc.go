// Package processor owns the process registry and drives the lifecycle
// operations of the engine. Each operation mutates the process tree, the
// resource ledgers and the ready queue, then runs the scheduler exactly once.
//
// The service is not safe for concurrent use; callers serialise operations.
package processor
