// Package command parses shell lines such as "cr a 1" or "req R2 2" and
// applies them to the engine, producing the running process transcript.
package command
