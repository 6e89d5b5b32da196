// Package logutil initialises the global zap logger used across the engine.
package logutil
