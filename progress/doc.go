// Package progress keeps aggregated engine counters (processes created,
// destroyed, blocked, preemptions, ...) for a single simulation session.
package progress
