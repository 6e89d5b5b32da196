package types

import (
	"github.com/pingcap/errors"
)

// Error kinds returned by the engine. Use ErrX.Equal(err) to test for a kind;
// every kind except ErrNoRunnableProcess is local and leaves state untouched.
var (
	ErrDuplicateName = errors.Normalize(
		"process %s already exists",
		errors.RFCCodeText("PROCMAN:ErrDuplicateName"),
	)
	ErrUnknownProcess = errors.Normalize(
		"process %s does not exist",
		errors.RFCCodeText("PROCMAN:ErrUnknownProcess"),
	)
	ErrUnknownResource = errors.Normalize(
		"resource %s does not exist",
		errors.RFCCodeText("PROCMAN:ErrUnknownResource"),
	)
	ErrInvalidRequest = errors.Normalize(
		"invalid request on resource %s: %s",
		errors.RFCCodeText("PROCMAN:ErrInvalidRequest"),
	)
	ErrNotHeld = errors.Normalize(
		"process %s holds no units of resource %s",
		errors.RFCCodeText("PROCMAN:ErrNotHeld"),
	)
	ErrNoRunnableProcess = errors.Normalize(
		"no runnable process: ready queue and running slot are empty",
		errors.RFCCodeText("PROCMAN:ErrNoRunnableProcess"),
	)

	// shell and configuration
	ErrInvalidCommand = errors.Normalize(
		"invalid command %q: %s",
		errors.RFCCodeText("PROCMAN:ErrInvalidCommand"),
	)
	ErrInvalidConfig = errors.Normalize(
		"invalid config: %s",
		errors.RFCCodeText("PROCMAN:ErrInvalidConfig"),
	)
)

// IsFatal reports whether err signals a terminal simulation state that the
// caller has to resolve, typically by reinitialising.
func IsFatal(err error) bool {
	return err != nil && ErrNoRunnableProcess.Equal(err)
}
