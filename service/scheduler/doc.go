// Package scheduler implements the priority preemptive scheduling step that
// runs after every state changing engine operation.
package scheduler
